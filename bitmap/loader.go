package bitmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// readChunkSize is the buffer size for streaming the pixel region.
// Not an observable contract, only an fgetc-avoidance optimization.
const readChunkSize = 512

// isSpace reports whether c is one of the whitespace bytes the format
// allows between pixel characters: space, TAB, LF, VT, FF, CR.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// readDimension consumes leading whitespace and one whitespace-delimited
// token from br, and parses it as a strictly positive decimal integer.
// name identifies the dimension in error messages.
func readDimension(br *bufio.Reader, name string) (int, error) {
	// Skip whitespace before the token.
	var c byte
	var err error
	for {
		c, err = br.ReadByte()
		if err == io.EOF {
			return 0, fmt.Errorf("%w: header ended before %s", ErrInvalidDimension, name)
		}
		if err != nil {
			return 0, fmt.Errorf("%w: read failed: %v", ErrInvalidBitmapFile, err)
		}
		if !isSpace(c) {
			break
		}
	}
	// Collect the token up to the next whitespace or EOF.
	tok := []byte{c}
	for {
		c, err = br.ReadByte()
		if err == io.EOF || (err == nil && isSpace(c)) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: read failed: %v", ErrInvalidBitmapFile, err)
		}
		tok = append(tok, c)
	}
	v, err := strconv.ParseUint(string(tok), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an unsigned integer", ErrInvalidDimension, name, tok)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: %s cannot be zero", ErrInvalidDimension, name)
	}

	return int(v), nil
}

// Load parses the textual bitmap format from r: a header of two decimal
// integers (height, then width) followed by exactly height×width characters
// from {'0','1'}, with any amount of interleaved whitespace.
// On failure nothing partial escapes: the result is nil and the error wraps
// ErrInvalidDimension or ErrInvalidBitmapFile.
// Complexity: O(W×H) time and memory, single pass.
func Load(r io.Reader) (*Bitmap, error) {
	br := bufio.NewReaderSize(r, readChunkSize)

	height, err := readDimension(br, "height")
	if err != nil {
		return nil, err
	}
	width, err := readDimension(br, "width")
	if err != nil {
		return nil, err
	}
	dims := Dimensions{Width: width, Height: height}
	if err = dims.validate(); err != nil {
		return nil, err
	}

	cells := dims.Cells()
	data := make([]Pixel, cells)
	count := 0
	buf := make([]byte, readChunkSize)
	for {
		n, rerr := br.Read(buf)
		for _, c := range buf[:n] {
			switch {
			case isSpace(c):
			case c == '0' || c == '1':
				if count == cells {
					return nil, fmt.Errorf("%w: pixel count exceeds the declared %dx%d",
						ErrInvalidBitmapFile, height, width)
				}
				if c == '1' {
					data[count] = Filled
				}
				count++
			default:
				return nil, fmt.Errorf("%w: unexpected character %q",
					ErrInvalidBitmapFile, c)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("%w: read failed: %v", ErrInvalidBitmapFile, rerr)
		}
	}
	if count != cells {
		return nil, fmt.Errorf("%w: found %d pixels, header declares %dx%d=%d",
			ErrInvalidDimension, count, height, width, cells)
	}

	return &Bitmap{dims: dims, data: data}, nil
}

// LoadFile opens path and delegates to Load, wrapping any error with the
// file location. An unreadable file is an ErrInvalidBitmapFile.
func LoadFile(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %v", ErrInvalidBitmapFile, path, err)
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
