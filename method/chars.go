package method

// methodChars maps every tchar to itself and every other byte to 0.
var methodChars = func() (t [256]byte) {
	const tchars = "!#$%&'*+-.^_`|~" +
		"0123456789" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < len(tchars); i++ {
		t[tchars[i]] = tchars[i]
	}
	return t
}()
