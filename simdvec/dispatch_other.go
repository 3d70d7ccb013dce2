//go:build !amd64 && !arm64

package simdvec

func init() {
	// Other architectures fall back to a scalar 16-byte lane for now.
	setScalarMode()
}
