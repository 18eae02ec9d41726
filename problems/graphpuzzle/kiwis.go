package graphpuzzle

// KiwisAndDogs returns the kiwis-and-dogs puzzle: two kiwis start on D and F,
// a dog on C; the kiwis must both reach A and the dog E.
func KiwisAndDogs() *Definition {
	return &Definition{
		Name:     "kiwis-and-dogs",
		Vertices: []string{"A", "B", "C", "D", "E", "F", "G"},
		Edges: []Edge{
			{From: "A", To: "B", Cost: 3, When: []string{"nobody(E)"}, Both: true},
			{From: "A", To: "C", Cost: 4},
			{From: "B", To: "C", Cost: 1, Both: true},
			{From: "B", To: "G", Cost: 5, Both: true},
			{From: "C", To: "D", Cost: 2, When: []string{"somebody(E)", "somebody(G)"}, Both: true},
			{From: "D", To: "E", Cost: 8, When: []string{"somebody(A)"}, Both: true},
			{From: "D", To: "F", Cost: 3, When: []string{"somebody(C)"}, Both: true},
			{From: "E", To: "F", Cost: 5},
			{From: "G", To: "F", Cost: 7},
		},
		Groups: []Group{
			{Name: "kiwi", Start: []string{"D", "F"}, Goal: "A"},
			{Name: "dog", Start: []string{"C"}, Goal: "E"},
		},
	}
}
