package render

// fillFieldRGBA converts concentration values into premultiplied RGBA pixels
// in buf using the CO2 ramp.
func fillFieldRGBA(buf []byte, values []float64) {
	for i, v := range values {
		base := i * 4
		r, g, b, a := CO2Color(v).RGBA()
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
