//go:build !cgo || !libhangul

package oracle

const Available = false

// OpenLibhangul reports ErrUnavailable when built without the libhangul tag.
func OpenLibhangul(layout string) (Oracle, error) {
	return nil, ErrUnavailable
}
