package font

// Classic is the 5x8 font, glyphs are 6 pixels apart.
var Classic = &Font{
	Name:    "classic",
	Width:   5,
	Height:  8,
	Advance: 6,
	glyphs: map[rune][]uint8{
		'0': {0b11111, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11111},
		'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b11111},
		'2': {0b11111, 0b00001, 0b00001, 0b11111, 0b10000, 0b10000, 0b10000, 0b11111},
		'3': {0b11111, 0b00001, 0b00001, 0b11111, 0b00001, 0b00001, 0b00001, 0b11111},
		'4': {0b10001, 0b10001, 0b10001, 0b11111, 0b00001, 0b00001, 0b00001, 0b00001},
		'5': {0b11111, 0b10000, 0b10000, 0b11111, 0b00001, 0b00001, 0b00001, 0b11111},
		'6': {0b11111, 0b10000, 0b10000, 0b11111, 0b10001, 0b10001, 0b10001, 0b11111},
		'7': {0b11111, 0b00001, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000},
		'8': {0b11111, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001, 0b11111},
		'9': {0b11111, 0b10001, 0b10001, 0b11111, 0b00001, 0b00001, 0b00001, 0b11111},
		'A': {0b11111, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001, 0b10001},
		'B': {0b11110, 0b10001, 0b10001, 0b11110, 0b10001, 0b10001, 0b10001, 0b11110},
		'C': {0b11111, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b11111},
		'D': {0b11110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11110},
		'E': {0b11111, 0b10000, 0b10000, 0b11111, 0b10000, 0b10000, 0b10000, 0b11111},
		'F': {0b11111, 0b10000, 0b10000, 0b11111, 0b10000, 0b10000, 0b10000, 0b10000},
		'G': {0b11111, 0b10000, 0b10000, 0b10111, 0b10001, 0b10001, 0b10001, 0b11111},
		'H': {0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001, 0b10001},
		'I': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b11111},
		'J': {0b11111, 0b00001, 0b00001, 0b00001, 0b00001, 0b10001, 0b10001, 0b11111},
		'K': {0b10001, 0b10010, 0b10100, 0b11000, 0b10100, 0b10010, 0b10001, 0b10001},
		'L': {0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b11111},
		'M': {0b10001, 0b11011, 0b10101, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001},
		'N': {0b10001, 0b11001, 0b10101, 0b10101, 0b10011, 0b10001, 0b10001, 0b10001},
		'O': {0b11111, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11111},
		'P': {0b11111, 0b10001, 0b10001, 0b11111, 0b10000, 0b10000, 0b10000, 0b10000},
		'Q': {0b11111, 0b10001, 0b10001, 0b10001, 0b10101, 0b10011, 0b10001, 0b11111},
		'R': {0b11111, 0b10001, 0b10001, 0b11111, 0b10100, 0b10010, 0b10001, 0b10001},
		'S': {0b11111, 0b10000, 0b10000, 0b11111, 0b00001, 0b00001, 0b00001, 0b11111},
		'T': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100},
		'U': {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11111},
		'V': {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01010, 0b01010, 0b00100},
		'W': {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10101, 0b11011, 0b10001},
		'X': {0b10001, 0b10001, 0b01010, 0b00100, 0b01010, 0b10001, 0b10001, 0b10001},
		'Y': {0b10001, 0b10001, 0b01010, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100},
		'Z': {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b10000, 0b11111},
		' ': {0, 0, 0, 0, 0, 0, 0, 0},
		':': {0b00000, 0b00100, 0b00100, 0b00000, 0b00000, 0b00100, 0b00100, 0b00000},
		'-': {0b00000, 0b00000, 0b00000, 0b11111, 0b00000, 0b00000, 0b00000, 0b00000},
		'+': {0b00000, 0b00100, 0b00100, 0b11111, 0b00100, 0b00100, 0b00000, 0b00000},
		'→': {0b00000, 0b00100, 0b00010, 0b11111, 0b00010, 0b00100, 0b00000, 0b00000},
		'.': {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00100, 0b00100},
		'@': {0b11111, 0b10001, 0b10101, 0b10111, 0b10110, 0b10000, 0b10000, 0b11111},
		'/': {0b00001, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b10000, 0b10000},
		'°': {0b01110, 0b10001, 0b10001, 0b01110, 0b00000, 0b00000, 0b00000, 0b00000},
		'!': {0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000, 0b00100, 0b00000},
		'%': {0b10001, 0b10010, 0b00100, 0b00100, 0b01000, 0b01001, 0b10001, 0b00000},
		'…': {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b10101, 0b00000},

		'\'': {0b00100, 0b00100, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000},
	},
}

// Compact is the 3x5 font used by the dense theme, glyphs are 4 pixels apart.
var Compact = &Font{
	Name:    "compact",
	Width:   3,
	Height:  5,
	Advance: 4,
	glyphs: map[rune][]uint8{
		'0': {0b111, 0b101, 0b101, 0b101, 0b111},
		'1': {0b010, 0b110, 0b010, 0b010, 0b111},
		'2': {0b111, 0b001, 0b111, 0b100, 0b111},
		'3': {0b111, 0b001, 0b111, 0b001, 0b111},
		'4': {0b101, 0b101, 0b111, 0b001, 0b001},
		'5': {0b111, 0b100, 0b111, 0b001, 0b111},
		'6': {0b111, 0b100, 0b111, 0b101, 0b111},
		'7': {0b111, 0b001, 0b001, 0b010, 0b010},
		'8': {0b111, 0b101, 0b111, 0b101, 0b111},
		'9': {0b111, 0b101, 0b111, 0b001, 0b111},
		'A': {0b010, 0b101, 0b111, 0b101, 0b101},
		'B': {0b110, 0b101, 0b110, 0b101, 0b110},
		'C': {0b011, 0b100, 0b100, 0b100, 0b011},
		'D': {0b110, 0b101, 0b101, 0b101, 0b110},
		'E': {0b111, 0b100, 0b110, 0b100, 0b111},
		'F': {0b111, 0b100, 0b110, 0b100, 0b100},
		'G': {0b011, 0b100, 0b101, 0b101, 0b011},
		'H': {0b101, 0b101, 0b111, 0b101, 0b101},
		'I': {0b111, 0b010, 0b010, 0b010, 0b111},
		'J': {0b001, 0b001, 0b001, 0b101, 0b010},
		'K': {0b101, 0b101, 0b110, 0b101, 0b101},
		'L': {0b100, 0b100, 0b100, 0b100, 0b111},
		'M': {0b101, 0b111, 0b111, 0b101, 0b101},
		'N': {0b110, 0b101, 0b101, 0b101, 0b101},
		'O': {0b010, 0b101, 0b101, 0b101, 0b010},
		'P': {0b110, 0b101, 0b110, 0b100, 0b100},
		'Q': {0b010, 0b101, 0b101, 0b110, 0b011},
		'R': {0b110, 0b101, 0b110, 0b101, 0b101},
		'S': {0b011, 0b100, 0b010, 0b001, 0b110},
		'T': {0b111, 0b010, 0b010, 0b010, 0b010},
		'U': {0b101, 0b101, 0b101, 0b101, 0b111},
		'V': {0b101, 0b101, 0b101, 0b101, 0b010},
		'W': {0b101, 0b101, 0b111, 0b111, 0b101},
		'X': {0b101, 0b101, 0b010, 0b101, 0b101},
		'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
		'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
		' ': {0, 0, 0, 0, 0},
		':': {0b000, 0b010, 0b000, 0b010, 0b000},
		'-': {0b000, 0b000, 0b111, 0b000, 0b000},
		'+': {0b000, 0b010, 0b111, 0b010, 0b000},
		'→': {0b100, 0b110, 0b111, 0b110, 0b100},
		'.': {0b000, 0b000, 0b000, 0b000, 0b010},
		'@': {0b111, 0b101, 0b111, 0b100, 0b111},
		'/': {0b001, 0b001, 0b010, 0b100, 0b100},
		'°': {0b010, 0b101, 0b010, 0b000, 0b000},
		'!': {0b010, 0b010, 0b010, 0b000, 0b010},
		'%': {0b101, 0b001, 0b010, 0b100, 0b101},
		'…': {0b000, 0b000, 0b000, 0b000, 0b101},

		'\'': {0b010, 0b010, 0b000, 0b000, 0b000},
	},
}
