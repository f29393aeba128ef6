// Package pixframe provides a minimal 2D pixel buffer with drawable frames.
//
// # Overview
//
// A [Buffer] is a flat array of packed RGB colors. A [Frame] wraps one
// buffer, optionally clips drawing to a rectangular [Selection], and owns an
// ordered list of draw callbacks that [Frame.Update] runs after clearing the
// selection area to black.
//
// # Quick Start
//
//	buf, err := pixframe.NewBuffer(pixframe.V(320, 240))
//	if err != nil {
//		return err
//	}
//	defer buf.Release()
//
//	f, err := pixframe.NewFrame(buf)
//	if err != nil {
//		return err
//	}
//	defer f.Release()
//
//	f.Push(func(f *pixframe.Frame, _ *pixframe.Param) {
//		f.FillRect(pixframe.V(10, 10), pixframe.V(50, 20), pixframe.RGB(255, 0, 0))
//	}, nil)
//	f.Update()
//
// # Ownership
//
// A frame holds its buffer but never releases it: buffers are released by
// whoever created them. Releasing a frame releases every [Param] still
// registered with it. Release methods are idempotent, and the ReleaseX
// helpers also nil the caller's handle.
//
// # Allocation accounting
//
// Every buffer, parameter and registry slot is charged to an [Allocator].
// The default never refuses. A [Budget] caps the bytes in use and counts
// every acquire and release, which makes exhaustion paths testable.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Coordinates are truncated toward zero when mapped to cells
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use except [SetLogger] and
// [Logger].
package pixframe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
