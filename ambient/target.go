package ambient

// TargetBrightness maps an ambient light reading to the brightness percentage
// the display should converge toward. The mapping is linear: maxLux and above
// yield 100%, everything below scales proportionally with floor division.
// floor is the lowest percentage ever returned, so a zero or near-zero reading
// never drives the display fully dark.
func TargetBrightness(lux, maxLux, floor int) int {
	if lux >= maxLux {
		return 100
	}
	return max(floor, lux*100/maxLux)
}
