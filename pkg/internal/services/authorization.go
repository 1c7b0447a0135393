package services

import "github.com/quillhq/quill/pkg/internal/models"

// Decision is the result of an authorization check: either an allow, or a
// deny carrying the reason to surface to the caller.
type Decision struct {
	Allow  bool
	Reason string
}

func Allowed() Decision {
	return Decision{Allow: true}
}

func Denied(reason string) Decision {
	return Decision{Reason: reason}
}

func CanEditPost(user models.Account, post models.Post) Decision {
	if post.AuthorID != user.ID {
		return Denied("only the author can edit this post")
	}
	return Allowed()
}

func CanDeletePost(user models.Account, post models.Post) Decision {
	if post.AuthorID != user.ID {
		return Denied("only the author can delete this post")
	}
	return Allowed()
}
