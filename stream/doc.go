// Package stream provides the iterative bencode parser and a streaming
// encoder, both driven by structural events.
//
// # Decoding
//
// A Decoder is a state machine over an explicit work stack, so nesting depth
// is bounded by heap memory rather than the goroutine stack. ReadEvent
// yields one structural event at a time; Decode assembles the events of one
// value into an ir.Node on a value stack.
//
//	dec := stream.NewDecoder(token.NewStringSource("d1:ali1ei2eee"))
//	for {
//		ev, err := dec.ReadEvent()
//		if err == io.EOF {
//			break
//		}
//		...
//	}
//
// Consecutive top-level values are decoded by calling Decode repeatedly;
// io.EOF marks the end of input. Parse decodes exactly one value and, like
// parse.Parse, leaves trailing bytes unread unless NoTrailing is given.
//
// # Encoding
//
// An Encoder writes events to a token.Sink as they arrive:
//
//	enc := stream.NewEncoder(sink)
//	enc.BeginDictionary()
//	enc.Key("age")
//	enc.Int(25)
//	enc.End()
//	err := enc.Close()
//
// Because output is written immediately, keys must arrive in ascending
// order; the encoder verifies this unless VerifyOrder(false) is given.
package stream
