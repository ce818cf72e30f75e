package reassembly

import (
	"github.com/dtlskit/reassembly/constants"
	"github.com/dtlskit/reassembly/dtlserrors"
	"github.com/dtlskit/reassembly/handshake"
)

// Incoming demultiplexes handshake fragments of one flight to per-message
// reassemblers keyed by message seq. The first fragment seen for a seq
// fixes the message type and length; completed messages are released
// strictly in seq order through PopMessage.
//
// Abandoning a flight is dropping the Incoming value, there is nothing to
// tear down.
type Incoming struct {
	nextSeq uint16
	partial map[uint16]*Reassembler
}

func NewIncoming() *Incoming {
	return &Incoming{partial: map[uint16]*Reassembler{}}
}

// Len returns the number of messages with at least one received fragment
// that have not been popped yet.
func (in *Incoming) Len() int { return len(in.partial) }

// NextSeq returns the seq of the next message PopMessage will release.
func (in *Incoming) NextSeq() uint16 { return in.nextSeq }

// Contribute routes one fragment to its message. Fragments for already
// released or too-far-future seqs are dropped, the peer retransmits until
// acked. A returned error is a warning for the caller's accounting, the
// flight itself never fails: state is untouched by a refused fragment.
func (in *Incoming) Contribute(hdr handshake.FragmentHeader, body []byte) (changed bool, err error) {
	if hdr.MsgSeq < in.nextSeq {
		return false, nil // already released, totally ok to ignore
	}
	if int(hdr.MsgSeq) >= int(in.nextSeq)+constants.MaxReceiveMessagesQueue {
		return false, nil // beyond the window, wait for earlier messages first
	}
	if hdr.Length > constants.MaxMessageLength {
		// reject before allocating the body
		return false, dtlserrors.WarnMessageTooLong
	}
	if hdr.FragmentOffset+hdr.FragmentLength > hdr.Length {
		return false, dtlserrors.WarnFragmentBeyondMessage
	}
	r, ok := in.partial[hdr.MsgSeq]
	if !ok {
		r = NewReassembler(hdr.MsgType, hdr.Length)
		in.partial[hdr.MsgSeq] = r
	}
	if hdr.MsgType != r.Type() || hdr.Length != r.TotalLength() {
		// first-seen header is authoritative for the whole message
		return false, dtlserrors.WarnFragmentHeaderMismatch
	}
	return r.Contribute(hdr, body), nil
}

// PopMessage releases the message at the next seq if it is complete.
// Messages completed out of order stay queued until all predecessors
// have been popped.
func (in *Incoming) PopMessage() (handshake.Message, bool) {
	r, ok := in.partial[in.nextSeq]
	if !ok {
		return handshake.Message{}, false
	}
	body, ok := r.BodyIfComplete()
	if !ok {
		return handshake.Message{}, false
	}
	msg := handshake.Message{MsgType: r.Type(), MsgSeq: in.nextSeq, Body: body}
	delete(in.partial, in.nextSeq)
	in.nextSeq++
	return msg, true
}
