package handshake

import (
	"bytes"
	"testing"
)

func TestFragmentHeaderParseWrite(t *testing.T) {
	hdr := FragmentHeader{
		MsgType: MsgTypeCertificate,
		Length:  0xFFFFFF, // 24-bit boundary
		FragmentInfo: FragmentInfo{
			MsgSeq:         0x1234,
			FragmentOffset: 0xABCDEF,
			FragmentLength: 5,
		},
	}
	datagram := hdr.Write(nil)
	if len(datagram) != FragmentHeaderSize {
		t.Fatalf("header size %d", len(datagram))
	}
	if !hdr.IsFragmented() {
		t.Fatalf("offset != 0 must mean fragmented")
	}

	var fragment Fragment
	record := append(datagram, 1, 2, 3, 4, 5, 0xFF) // trailing byte belongs to the next message
	n, err := fragment.Parse(record)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n != FragmentHeaderSize+5 {
		t.Fatalf("parse consumed %d", n)
	}
	if fragment.Header != hdr {
		t.Fatalf("parsed header %+v != %+v", fragment.Header, hdr)
	}
	if !bytes.Equal(fragment.Body, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("parsed body %v", fragment.Body)
	}
}

func TestFragmentParseTooShort(t *testing.T) {
	hdr := FragmentHeader{
		MsgType: MsgTypeFinished,
		Length:  32,
		FragmentInfo: FragmentInfo{
			FragmentOffset: 0,
			FragmentLength: 32,
		},
	}
	if hdr.IsFragmented() {
		t.Fatalf("whole-message fragment reported as fragmented")
	}
	datagram := hdr.Write(nil)
	var fragment Fragment
	for cut := 0; cut < len(datagram); cut++ {
		if _, err := fragment.Parse(datagram[:cut]); err != ErrHandshakeMsgTooShort {
			t.Fatalf("cut at %d: %v", cut, err)
		}
	}
	// header complete, body missing
	if _, err := fragment.Parse(datagram); err != ErrHandshakeMsgTooShort {
		t.Fatalf("truncated body: %v", err)
	}
}
