// domain/dto/mappers.go
package dto

import "github.com/altsora/SocialNetwork-sub000/domain/models"

// NewPersonData projects a person onto the API shape.
func NewPersonData(p *models.Person) PersonData {
	return PersonData{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		RegDate:        p.RegDate,
		BirthDate:      p.BirthDate,
		Email:          p.Email,
		Phone:          p.Phone,
		Photo:          p.Photo,
		About:          p.About,
		City:           p.City,
		Country:        p.Country,
		LastOnlineTime: p.LastOnlineTime,
		IsBlocked:      p.IsBlocked,
		Online:         p.IsOnline,
	}
}

// NewPersonDataList projects a slice of persons.
func NewPersonDataList(persons []*models.Person) []PersonData {
	out := make([]PersonData, 0, len(persons))
	for _, p := range persons {
		out = append(out, NewPersonData(p))
	}
	return out
}

// NewCommentData projects a comment without its children; tree assembly is
// the comment service's job.
func NewCommentData(c *models.Comment) CommentData {
	return CommentData{
		ID:          c.ID,
		PostID:      c.PostID,
		ParentID:    c.ParentID,
		AuthorID:    c.AuthorID,
		CommentText: c.CommentText,
		Time:        c.Time,
		IsBlocked:   c.IsBlocked,
	}
}

// NewMessageFullResponse projects a message onto the API shape.
func NewMessageFullResponse(m *models.Message) MessageFullResponse {
	return MessageFullResponse{
		ID:          m.ID,
		DialogID:    m.DialogID,
		AuthorID:    m.AuthorID,
		RecipientID: m.RecipientID,
		Time:        m.Time,
		MessageText: m.MessageText,
		ReadStatus:  MessageStatus(m.ReadStatus),
		IsDeleted:   m.IsDeleted,
	}
}
