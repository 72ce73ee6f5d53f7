package library

// VideoFilter specifies criteria for listing videos.
type VideoFilter struct {
	MinRating int     // 0 = no rating constraint
	Tag       *string // require this tag
	Search    *string // substring match on title, filename, description
	Limit     int     // 0 = no limit
	Offset    int
}
