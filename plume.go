// Package plume turns canonical letter records into byte-exact export
// documents and derives reusable templates, keywords, structural scores,
// and merged content from free-form letter text.
//
// Four export formats share one content contract, so a letter reads the
// same in PDF, DOCX, TXT, and HTML; only the physical encoding differs.
//
// Basic usage:
//
//	buf, warnings, err := plume.Letter(letter, profile).
//		Format("pdf").
//		Watermark().
//		Bytes()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", strings.Join(warnings, "; "))
//	}
//
// For store-backed operations (export by ID, template suggestions,
// letter-to-template conversion, comparison reports), see [Engine].
//
// All operations are synchronous, side-effect-free transformations over
// immutable inputs; arbitrarily many may run concurrently without
// coordination.
package plume

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := plume.Must(engine.Export(ctx, letterID, userID, opts))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustBytes is a helper that wraps a call to Bytes() and panics if the
// error is non-nil. It discards warnings and returns just the buffer.
//
// Example:
//
//	buf := plume.MustBytes(plume.Letter(letter, profile).Bytes())
func MustBytes(buf []byte, _ []string, err error) []byte {
	if err != nil {
		panic(err)
	}
	return buf
}
