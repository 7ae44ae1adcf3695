package lanes

//go:generate go run ../cmd/vecgen -table vectors.yaml -output .
