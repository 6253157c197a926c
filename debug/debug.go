package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Stream bool
	Borrow bool
	Encode bool
	Export bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("BENCODE_DEBUG_PARSE")
	d.Stream = boolEnv("BENCODE_DEBUG_STREAM")
	d.Borrow = boolEnv("BENCODE_DEBUG_BORROW")
	d.Encode = boolEnv("BENCODE_DEBUG_ENCODE")
	d.Export = boolEnv("BENCODE_DEBUG_EXPORT")
	d.Eval = boolEnv("BENCODE_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Stream() bool {
	return d.Stream
}
func Borrow() bool {
	return d.Borrow
}
func Encode() bool {
	return d.Encode
}
func Export() bool {
	return d.Export
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
