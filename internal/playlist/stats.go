package playlist

// Stats summarizes a playlist collection.
type Stats struct {
	TotalSongs int     `json:"total_songs"`
	AvgEnergy  float64 `json:"avg_energy"`
	HypeRatio  float64 `json:"hype_ratio"`
	HypeCount  int     `json:"hype_count"`
	ChillCount int     `json:"chill_count"`
	MixedCount int     `json:"mixed_count"`
}

// ComputeStats counts each list and averages energy across all of them.
// An empty collection yields zero average and zero ratio.
func ComputeStats(p Playlists) Stats {
	st := Stats{
		HypeCount:  len(p.Hype),
		ChillCount: len(p.Chill),
		MixedCount: len(p.Mixed),
	}
	st.TotalSongs = st.HypeCount + st.ChillCount + st.MixedCount
	if st.TotalSongs == 0 {
		return st
	}

	var energy int
	for _, s := range p.All() {
		energy += s.Energy
	}
	st.AvgEnergy = float64(energy) / float64(st.TotalSongs)
	st.HypeRatio = float64(st.HypeCount) / float64(st.TotalSongs)
	return st
}
