package handshake

import "github.com/dtlskit/reassembly/safecast"

// Message is a fully reassembled handshake message.
// Body structure is opaque at this layer, parsing belongs to the consumer.
type Message struct {
	MsgType MsgType
	MsgSeq  uint16
	Body    []byte
}

func (msg *Message) Len32() uint32 {
	return safecast.Cast[uint32](len(msg.Body))
}
