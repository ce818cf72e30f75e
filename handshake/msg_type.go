package handshake

import "errors"

type MsgType byte

var ErrHandshakeMsgTooShort = errors.New("handshake message too short")

const (
	MsgTypeZero                MsgType = 0 // hello_request_RESERVED - we use it as "message not set" flag
	MsgTypeClientHello         MsgType = 1
	MsgTypeServerHello         MsgType = 2
	MsgTypeNewSessionTicket    MsgType = 4
	MsgTypeEndOfEarlyData      MsgType = 5
	MsgTypeEncryptedExtensions MsgType = 8
	MsgTypeRequestConnectionID MsgType = 9
	MsgTypeNewConnectionID     MsgType = 10
	MsgTypeCertificate         MsgType = 11
	MsgTypeCertificateRequest  MsgType = 13
	MsgTypeCertificateVerify   MsgType = 15
	MsgTypeFinished            MsgType = 20
	MsgTypeKeyUpdate           MsgType = 24
	MsgTypeMessageHash         MsgType = 254 // synthetic message, never transmitted [rfc9147:5.1]
)

func (t MsgType) String() string {
	switch t {
	case MsgTypeZero:
		return "<zero>"
	case MsgTypeClientHello:
		return "ClientHello"
	case MsgTypeServerHello:
		return "ServerHello"
	case MsgTypeNewSessionTicket:
		return "NewSessionTicket"
	case MsgTypeEndOfEarlyData:
		return "EndOfEarlyData"
	case MsgTypeEncryptedExtensions:
		return "EncryptedExtensions"
	case MsgTypeRequestConnectionID:
		return "RequestConnectionId"
	case MsgTypeNewConnectionID:
		return "NewConnectionId"
	case MsgTypeCertificate:
		return "Certificate"
	case MsgTypeCertificateRequest:
		return "CertificateRequest"
	case MsgTypeCertificateVerify:
		return "CertificateVerify"
	case MsgTypeFinished:
		return "Finished"
	case MsgTypeKeyUpdate:
		return "KeyUpdate"
	case MsgTypeMessageHash:
		return "MessageHash"
	default:
		return "<unknown>"
	}
}
