/*
Package logotrim turns a logo image into a square favicon asset. It crops the
transparent border around the logo, centers the remaining content on a fully
transparent square canvas and saves the result as an RGBA PNG.

The package comes with a command which reads public/logo.png (or public/logo.jpg
when the PNG is missing) and writes src/app/icon.png, the file picked up by the
Next.js build as the application icon:

	$ go run ./cmd/logotrim

The pipeline can also be called directly:

	package main

	import (
		"fmt"

		"github.com/ride-share-app/logotrim"
	)

	func main() {
		res := logotrim.Run(logotrim.Config{
			Input:    "public/logo.png",
			Fallback: "public/logo.jpg",
			Output:   "src/app/icon.png",
		})
		fmt.Println(res.Message())
	}

A logo with an opaque white background is not trimmed, since only
transparent pixels are treated as background.
*/
package logotrim
