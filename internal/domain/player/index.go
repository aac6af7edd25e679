package player

// Index resolves players by id. The last row wins when an id repeats.
type Index map[int]Player

func NewIndex(players []Player) Index {
	out := make(Index, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}

func (idx Index) Get(id int) (Player, bool) {
	p, ok := idx[id]
	return p, ok
}
