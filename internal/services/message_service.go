package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ndelacroix/chatline-be/internal/models"
)

// MessageServiceProvider defines the interface for message services.
type MessageServiceProvider interface {
	ListMessages() ([]models.Message, error)
	PostMessage(callerID, content string, parentID *int64) (models.Message, error)
	EditMessage(callerID string, messageID int64, newContent string) error
	DeleteMessage(callerID string, messageID int64) error
}

// MessageService provides message CRUD with role-based authorization.
type MessageService struct {
	db       *sql.DB
	userSvc  UserServiceProvider
	eventSvc EventServiceProvider
}

// NewMessageService creates a new MessageService.
func NewMessageService(db *sql.DB, userSvc UserServiceProvider, eventSvc EventServiceProvider) *MessageService {
	return &MessageService{db: db, userSvc: userSvc, eventSvc: eventSvc}
}

// ListMessages returns every message ordered by creation time ascending,
// ties broken by id (insertion order). Reads are unrestricted.
func (s *MessageService) ListMessages() ([]models.Message, error) {
	rows, err := s.db.Query("SELECT id, author_id, author_display_name, content, created_at, edited, parent_id FROM messages ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.AuthorID, &msg.AuthorDisplayName, &msg.Content, &msg.CreatedAt, &msg.Edited, &msg.ParentID); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// PostMessage creates a message authored by callerID. The author's current
// display name is denormalized into the row so later changes never rewrite
// history. The parent id is stored as given; its existence is not verified.
func (s *MessageService) PostMessage(callerID, content string, parentID *int64) (models.Message, error) {
	caller, err := s.resolveActive(callerID)
	if err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		AuthorID:          caller.ID,
		AuthorDisplayName: caller.DisplayName,
		Content:           content,
		CreatedAt:         time.Now().UTC(),
		ParentID:          parentID,
	}

	stmt, err := s.db.Prepare("INSERT INTO messages(author_id, author_display_name, content, created_at, edited, parent_id) VALUES(?, ?, ?, ?, 0, ?)")
	if err != nil {
		return models.Message{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(msg.AuthorID, msg.AuthorDisplayName, msg.Content, msg.CreatedAt, msg.ParentID)
	if err != nil {
		return models.Message{}, err
	}
	msg.ID, err = res.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

// EditMessage overwrites a message's content. Premium users may edit their
// own messages, admins anyone's. The edited flag is set unconditionally,
// even when the new content equals the old.
func (s *MessageService) EditMessage(callerID string, messageID int64, newContent string) error {
	var authorID string
	err := s.db.QueryRow("SELECT author_id FROM messages WHERE id = ?", messageID).Scan(&authorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("message %d: %w", messageID, ErrNotFound)
		}
		return err
	}

	caller, err := s.resolveActive(callerID)
	if err != nil {
		return err
	}
	if !caller.CanEdit(authorID) {
		return fmt.Errorf("role %s may not edit this message: %w", caller.Role, ErrForbidden)
	}

	_, err = s.db.Exec("UPDATE messages SET content = ?, edited = 1 WHERE id = ?", newContent, messageID)
	return err
}

// DeleteMessage permanently removes a message. Admin only. Children keep
// their parent_id; the dangling reference is the client's to handle.
func (s *MessageService) DeleteMessage(callerID string, messageID int64) error {
	caller, err := s.resolveActive(callerID)
	if err != nil {
		return err
	}
	if !caller.CanDelete() {
		return fmt.Errorf("only admins may delete messages: %w", ErrForbidden)
	}

	res, err := s.db.Exec("DELETE FROM messages WHERE id = ?", messageID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("message %d: %w", messageID, ErrNotFound)
	}

	if s.eventSvc != nil {
		if err := s.eventSvc.CreateEvent("message.delete", "info", fmt.Sprintf("message %d deleted by %s", messageID, caller.DisplayName), &caller.ID); err != nil {
			return err
		}
	}
	return nil
}

// resolveActive resolves the caller and rejects banned users. A banned
// identity keeps read access but loses all writes.
func (s *MessageService) resolveActive(callerID string) (models.User, error) {
	if callerID == "" {
		return models.User{}, ErrUnauthorized
	}
	caller, err := s.userSvc.GetUserByID(callerID)
	if err != nil {
		return models.User{}, err
	}
	if caller.Banned {
		return models.User{}, fmt.Errorf("user %s is banned: %w", caller.DisplayName, ErrForbidden)
	}
	return caller, nil
}
