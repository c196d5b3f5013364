package entities

const (
	DefaultPostTime = "Just now"
	DefaultPostType = "Update"
	DefaultPostKind = "update"
)

// Post é uma publicação do feed social
type Post struct {
	ID               int64
	Author           string
	Time             string
	Type             string
	Content          string
	Image            *string
	MediaType        *string
	TaggedPropertyID *int64
	PostType         string
	PropertyID       *int64
	Likes            int
	LikedByMe        bool
}

// ApplyDefaults preenche os campos opcionais não informados
func (p *Post) ApplyDefaults() {
	if p.Time == "" {
		p.Time = DefaultPostTime
	}
	if p.Type == "" {
		p.Type = DefaultPostType
	}
	if p.PostType == "" {
		p.PostType = DefaultPostKind
	}
}

// ToggleLike soma ou subtrai exatamente uma curtida.
// Não é idempotente: duas chamadas com liked=true somam duas curtidas.
func (p *Post) ToggleLike(liked bool) {
	if liked {
		p.Likes++
	} else {
		p.Likes--
	}
	p.LikedByMe = liked
}
