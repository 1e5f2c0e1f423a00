// Package commands implements the cryptolab CLI.
//
// Commands:
//
//	keygen              generate a key bundle for a layered session
//	bundles             list stored key bundles
//	encrypt             run the 5-layer encryption pipeline
//	decrypt             run the reverse pipeline on an envelope file
//	watermark           embed/extract/strip zero-width watermarks
//	stego               hide/extract payloads via synonym substitution
package commands
