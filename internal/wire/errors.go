package wire

import "errors"

// ErrEncoding is the stable EncodingError taxonomy entry: any malformed
// header or body raised at wire decode time.
var ErrEncoding = errors.New("wire: encoding error")
