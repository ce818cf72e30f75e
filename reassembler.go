// Package reassembly rebuilds DTLS handshake messages from length-prefixed
// byte-range fragments that may arrive out of order, duplicated, or
// overlapping each other. It consumes pre-parsed fragment headers and raw
// fragment bytes; record protection, retransmission and message parsing
// belong to the surrounding layers.
package reassembly

import (
	"slices"

	"github.com/dtlskit/reassembly/handshake"
)

const healthChecks = false

// half-open range of byte offsets not yet received
type gap struct {
	start uint32
	end   uint32
}

// Reassembler owns the body of one in-flight handshake message plus the
// exact set of byte offsets still missing from it. Gaps are sorted
// ascending, disjoint and never touching. The message is complete exactly
// when no gaps remain; completeness is always derived, never stored.
//
// A Reassembler must be owned by a single flow; callers delivering
// fragments from several goroutines must serialize access themselves.
type Reassembler struct {
	msgType handshake.MsgType
	body    []byte
	missing []gap
}

// NewReassembler allocates the body for a message of the declared length.
// Callers must bound length before calling, see constants.MaxMessageLength.
// A zero-length message is complete immediately.
func NewReassembler(msgType handshake.MsgType, length uint32) *Reassembler {
	r := &Reassembler{
		msgType: msgType,
		body:    make([]byte, length),
	}
	if length > 0 {
		r.missing = append(r.missing, gap{start: 0, end: length})
	}
	return r
}

func (r *Reassembler) Type() handshake.MsgType { return r.msgType }

func (r *Reassembler) TotalLength() uint32 { return uint32(len(r.body)) }

// BodyIfComplete returns the full message body once every byte has been
// received, and (nil, false) before that. It does not consume the body;
// calling it again keeps returning the same completed message.
func (r *Reassembler) BodyIfComplete() ([]byte, bool) {
	if len(r.missing) != 0 {
		return nil, false
	}
	return r.body, true
}

// Contribute merges one fragment into the body. Fragments whose header
// disagrees with this message (type, declared length, or a span reaching
// past the end) are dropped without effect, so a bogus datagram cannot
// abort reassembly of an otherwise valid message; callers wanting to
// report such fragments must check the header themselves first.
//
// Only bytes still missing are copied, at most one copy per byte over the
// life of the message. A duplicate fragment is a no-op, and a fragment
// overlapping already-received bytes never rewrites them. Returns whether
// anything was written; after a true return the caller should poll
// BodyIfComplete.
func (r *Reassembler) Contribute(hdr handshake.FragmentHeader, body []byte) (changed bool) {
	fragmentEnd := hdr.FragmentOffset + hdr.FragmentLength
	if hdr.MsgType != r.msgType || hdr.Length != r.TotalLength() || fragmentEnd > r.TotalLength() {
		return false
	}
	if hdr.FragmentLength == 0 || uint32(len(body)) != hdr.FragmentLength {
		return false
	}
	for i := 0; i < len(r.missing); i++ {
		g := r.missing[i]
		if g.start >= fragmentEnd {
			break // gaps are sorted, nothing further can overlap
		}
		if g.end <= hdr.FragmentOffset {
			continue
		}
		copyStart := max(g.start, hdr.FragmentOffset)
		copyEnd := min(g.end, fragmentEnd)
		copy(r.body[copyStart:copyEnd], body[copyStart-hdr.FragmentOffset:])
		changed = true

		switch {
		case copyStart == g.start && copyEnd == g.end:
			r.missing = slices.Delete(r.missing, i, i+1)
			i--
		case copyStart == g.start:
			r.missing[i].start = copyEnd
		case copyEnd == g.end:
			r.missing[i].end = copyStart
		default:
			// fragment lands strictly inside the gap, split it
			r.missing[i].end = copyStart
			r.missing = slices.Insert(r.missing, i+1, gap{start: copyEnd, end: g.end})
			i++
		}
	}
	r.checkInvariants()
	return changed
}

func (r *Reassembler) checkInvariants() {
	if !healthChecks {
		return
	}
	for i, g := range r.missing {
		if g.start >= g.end {
			panic("reassembler empty or reversed gap")
		}
		if g.end > r.TotalLength() {
			panic("reassembler gap beyond body")
		}
		if i > 0 && r.missing[i-1].end >= g.start {
			panic("reassembler gaps unsorted or touching")
		}
	}
}

// fillMirror writes 1 for every received offset and 0 for every missing
// one, for comparison against a model in tests.
func (r *Reassembler) fillMirror(m []byte) []byte {
	for i := range m {
		m[i] = 1
	}
	for _, g := range r.missing {
		for j := g.start; j < g.end; j++ {
			m[j] = 0
		}
	}
	return m
}
