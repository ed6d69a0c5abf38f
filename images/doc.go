// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package images stores candidate pictures on the filesystem.

Every upload is kept twice: the original bytes under uncompressed/ and
a 400x400 center-cropped JPEG (quality 80) served to clients. Callers
only ever see the generated image id:

	id, err := store.Save(file)
	path := store.Path(id)

The rest of the service treats image ids as opaque strings.
*/
package images
