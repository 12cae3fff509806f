package feed

import (
	"fmt"
	"html"
	"io"

	"github.com/dmitrijs2005/vibecli/internal/client/models"
)

// Render writes one feed snapshot. Posts come out in server order, each as
// a three-line node:
//
//	#<id> by <author> at <created_at>
//	<content>
//	Like (<likes>)
//
// followed by its one-level replies, indented. User-supplied text (content,
// author names, display names) is HTML-escaped so a post like
// "<script>x</script>" shows up as literal text wherever the output is
// later embedded.
func Render(w io.Writer, posts []models.Post) {
	for i := range posts {
		renderPost(w, &posts[i], "")
		fmt.Fprintln(w)
	}
}

func renderPost(w io.Writer, p *models.Post, indent string) {
	fmt.Fprintf(w, "%s#%d by %s at %s\n", indent, p.ID, html.EscapeString(p.Author()), p.CreatedAt)
	fmt.Fprintf(w, "%s%s\n", indent, html.EscapeString(p.Content))
	fmt.Fprintf(w, "%sLike (%d)\n", indent, p.Likes)

	for i := range p.Replies {
		renderPost(w, &p.Replies[i], indent+"    ")
	}
}

// RenderProfile writes a user page: a header line followed by the user's
// posts in server order.
func RenderProfile(w io.Writer, p *models.Profile) {
	name := p.Username
	if p.DisplayName != "" {
		name = fmt.Sprintf("%s (%s)", p.Username, p.DisplayName)
	}
	fmt.Fprintf(w, "@%s, joined %s\n\n", html.EscapeString(name), p.CreatedAt)
	Render(w, p.Posts)
}
