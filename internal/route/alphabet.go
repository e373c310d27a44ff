package route

// AlphabetLink is one letter of the alphabet sidebar.
type AlphabetLink struct {
	Letter   string
	Location Location
}

// Alphabet returns one link per letter A through Z.
func Alphabet() []AlphabetLink {
	links := make([]AlphabetLink, 0, 26)
	for c := 'A'; c <= 'Z'; c++ {
		letter := string(c)
		links = append(links, AlphabetLink{Letter: letter, Location: Letter(letter)})
	}
	return links
}
