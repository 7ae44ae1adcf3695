//go:build !amd64 && !arm64

package lanes

func init() {
	setLevel(DispatchScalar)
}
