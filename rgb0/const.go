package rgb0

// Fixed markers every RGB0 capture starts with.
const (
	Magic   = "RGB0"
	Version = "1001"

	// Sentinel fills the four bytes after the version in all observed
	// captures.
	Sentinel uint32 = 0xFFFFFFFF
)

const (
	headerPrefixSize = 0x17
	portEntrySize    = 0x0D
	gammaEntries     = 256
	gammaSize        = gammaEntries * 2

	// One colour channel group per port; the only value observed.
	channelCount byte = 1
)

// Per-port mode bytes seen on GICO controllers. The codec writes these
// but never interprets them.
const (
	ModeDMX512 byte = 0x03
	ModeSPITTL byte = 0x06
	ModeTM1814 byte = 0x1B
)

// Known-good per-port values taken from working captures. Overridable
// via EncodeOptions for other controller variants.
const (
	DefaultMode  byte   = ModeSPITTL
	DefaultFlags uint16 = 0x80FA

	// LoopByteValid marks a capture intended as valid playback. Other
	// values are undocumented and passed through untouched.
	LoopByteValid byte = 0x50
)

// Default topology for GICO 5016A units (16 ports of 1000 pixels, six
// Art-Net universes per port).
const (
	DefaultPortCount   = 16
	DefaultLEDsPerPort = 1000
)
