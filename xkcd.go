package kerntab

// Kerning data for the "xkcd" u8g2 font. Codes are ASCII.
var xkcdFirstChars = [20]CharCode{
	65, 67, 68, 69, 70, 74, 75, 76, 79, 80, 81, 82, 83, 84, 85, 86, 87,
	88, 89, Sentinel,
}

var xkcdGroupOffsets = [20]uint16{
	0, 1, 2, 3, 4, 17, 24, 26, 30, 33, 34, 45, 46, 48, 61, 62, 63,
	64, 66, 71,
}

var xkcdSecondChars = [71]CharCode{
	84, 86, 74, 86, 65, 66, 67, 69, 71, 72, 74, 77, 79, 81, 83, 85, 86,
	67, 72, 74, 77, 81, 85, 86, 84, 86, 74, 84, 86, 89, 74, 84, 88,
	74, 67, 71, 74, 76, 80, 81, 84, 85, 87, 88, 89, 74, 74, 84, 65,
	66, 67, 69, 71, 72, 74, 77, 79, 81, 83, 85, 86, 74, 74, 74, 84,
	86, 65, 67, 71, 74, 81,
}

var xkcdValues = [71]uint8{
	2, 2, 2, 2, 2, 2, 3, 2, 2, 3, 4, 3, 2, 3, 2, 3, 3,
	2, 3, 3, 3, 2, 3, 2, 2, 2, 3, 3, 2, 3, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 3, 2, 2, 4, 4, 4, 2, 3, 2, 4, 3, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2,
}

// The kerning table of the xkcd bitmap font, as generated by u8g2's
// bdfconv. Sentinel terminated: 19 first chars and 71 pairs.
var Xkcd = Must(xkcdFirstChars[:], xkcdGroupOffsets[:], xkcdSecondChars[:], xkcdValues[:])
