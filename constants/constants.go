package constants

// Upper bound on the declared length of a single handshake message.
// Reassembly allocates the whole body up front, so the bound must be
// checked before a reassembler is constructed. The largest legitimate
// messages are certificate chains, which fit here with a wide margin.
const MaxMessageLength = 1 << 18

// How far ahead of the next expected message seq we accept fragments.
// Fragments beyond the window are dropped and must be retransmitted.
const MaxReceiveMessagesQueue = 8
