package anim

// Read-only lookup data. Integer tables replace the trigonometry the effects
// are derived from, so every step is deterministic and portable.

const waveLen = 64

// waveTable holds one period of a smoothed wave, round((sin(2*pi*i/64)+1)/2*255).
var waveTable = [waveLen]uint8{
	128, 140, 152, 165, 176, 188, 198, 208,
	218, 226, 234, 240, 245, 250, 253, 254,
	255, 254, 253, 250, 245, 240, 234, 226,
	218, 208, 198, 188, 176, 165, 152, 140,
	128, 115, 103, 90, 79, 67, 57, 47,
	37, 29, 21, 15, 10, 5, 2, 1,
	0, 1, 2, 5, 10, 15, 21, 29,
	37, 47, 57, 67, 79, 90, 103, 115,
}

// rainbowTable spans the hue circle once over 64 entries ({r, g, b},
// hue = i*360/64 at full saturation and value).
var rainbowTable = [waveLen][3]uint8{
	{0xFF, 0x00, 0x00}, {0xFF, 0x17, 0x00}, {0xFF, 0x2F, 0x00}, {0xFF, 0x47, 0x00},
	{0xFF, 0x5F, 0x00}, {0xFF, 0x77, 0x00}, {0xFF, 0x8F, 0x00}, {0xFF, 0xA7, 0x00},
	{0xFF, 0xBF, 0x00}, {0xFF, 0xD7, 0x00}, {0xFF, 0xEF, 0x00}, {0xF7, 0xFF, 0x00},
	{0xDF, 0xFF, 0x00}, {0xC7, 0xFF, 0x00}, {0xAF, 0xFF, 0x00}, {0x97, 0xFF, 0x00},
	{0x7F, 0xFF, 0x00}, {0x67, 0xFF, 0x00}, {0x4F, 0xFF, 0x00}, {0x37, 0xFF, 0x00},
	{0x1F, 0xFF, 0x00}, {0x07, 0xFF, 0x00}, {0x00, 0xFF, 0x0F}, {0x00, 0xFF, 0x27},
	{0x00, 0xFF, 0x3F}, {0x00, 0xFF, 0x57}, {0x00, 0xFF, 0x6F}, {0x00, 0xFF, 0x87},
	{0x00, 0xFF, 0x9F}, {0x00, 0xFF, 0xB7}, {0x00, 0xFF, 0xCF}, {0x00, 0xFF, 0xE7},
	{0x00, 0xFF, 0xFF}, {0x00, 0xE7, 0xFF}, {0x00, 0xCF, 0xFF}, {0x00, 0xB7, 0xFF},
	{0x00, 0x9F, 0xFF}, {0x00, 0x87, 0xFF}, {0x00, 0x6F, 0xFF}, {0x00, 0x57, 0xFF},
	{0x00, 0x3F, 0xFF}, {0x00, 0x27, 0xFF}, {0x00, 0x0F, 0xFF}, {0x07, 0x00, 0xFF},
	{0x1F, 0x00, 0xFF}, {0x37, 0x00, 0xFF}, {0x4F, 0x00, 0xFF}, {0x67, 0x00, 0xFF},
	{0x7F, 0x00, 0xFF}, {0x97, 0x00, 0xFF}, {0xAF, 0x00, 0xFF}, {0xC7, 0x00, 0xFF},
	{0xDF, 0x00, 0xFF}, {0xF7, 0x00, 0xFF}, {0xFF, 0x00, 0xEF}, {0xFF, 0x00, 0xD7},
	{0xFF, 0x00, 0xBF}, {0xFF, 0x00, 0xA7}, {0xFF, 0x00, 0x8F}, {0xFF, 0x00, 0x77},
	{0xFF, 0x00, 0x5F}, {0xFF, 0x00, 0x47}, {0xFF, 0x00, 0x2F}, {0xFF, 0x00, 0x17},
}

// thinkingEnvelope is the 3-phase brightness envelope (fade-in, hold,
// fade-out) applied per color: {0.6, 1.0, 0.4} of the 180 ceiling.
var thinkingEnvelope = [3]uint8{108, 180, 72}
