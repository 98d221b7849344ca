package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/repository"
	"github.com/maheshrc27/postflow-composer/internal/transfer"
)

var (
	ErrPostNotFound = errors.New("Post doesn't exist")
	ErrEmptyPost    = errors.New("Post has no content or media")
	ErrNoTargets    = errors.New("no social accounts selected")
)

type PostService interface {
	CreatePost(ctx context.Context, userID int64, pc *transfer.PostCreation) (int64, time.Duration, error)
	List(ctx context.Context, userID int64) ([]*models.Post, error)
	PostInfo(ctx context.Context, postID, userID int64) (*transfer.PostDetails, error)
	MarkFailed(ctx context.Context, postID int64) error
	Remove(ctx context.Context, userID, postID int64) error
}

type postService struct {
	db  *sql.DB
	pr  repository.PostRepository
	sa  repository.SelectedAccountRepository
	ac  repository.SocialAccountRepository
	pm  repository.PostMediaRepository
	ph  repository.PostingHistoryRepository
	now func() time.Time
}

func NewPostService(
	db *sql.DB,
	pr repository.PostRepository,
	sa repository.SelectedAccountRepository,
	ac repository.SocialAccountRepository,
	pm repository.PostMediaRepository,
	ph repository.PostingHistoryRepository) PostService {
	return &postService{
		db:  db,
		pr:  pr,
		sa:  sa,
		ac:  ac,
		pm:  pm,
		ph:  ph,
		now: time.Now,
	}
}

// CreatePost stores the post with its targets and media in one transaction and
// returns how long to wait before it is due. Past times are due immediately.
func (s *postService) CreatePost(ctx context.Context, userID int64, pc *transfer.PostCreation) (postID int64, delay time.Duration, err error) {
	if pc == nil {
		err = errors.New("post creation data is nil")
		slog.Error(err.Error())
		return 0, 0, err
	}
	if pc.Content == "" && len(pc.MediaURLs) == 0 {
		slog.Info(ErrEmptyPost.Error())
		return 0, 0, ErrEmptyPost
	}
	if len(pc.AccountIDs) == 0 {
		slog.Info(ErrNoTargets.Error())
		return 0, 0, ErrNoTargets
	}

	accounts, err := s.ownedAccounts(ctx, userID, pc.AccountIDs)
	if err != nil {
		return 0, 0, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	status := models.PostStatusQueued
	if pc.ScheduledTime != nil {
		status = models.PostStatusScheduled
	}

	post := models.Post{
		UserID:        userID,
		Content:       pc.Content,
		ScheduledTime: pc.ScheduledTime,
		Status:        status,
	}

	postID, err = s.pr.Create(ctx, tx, &post)
	if err != nil {
		return 0, 0, fmt.Errorf("error creating post: %w", err)
	}

	for _, acc := range accounts {
		selected := models.SelectedAccount{
			PostID:    postID,
			AccountID: acc.ID,
			Platform:  acc.Platform,
		}
		if err = s.sa.Create(ctx, tx, &selected); err != nil {
			return 0, 0, fmt.Errorf("error saving selected account %d: %w", acc.ID, err)
		}
	}

	for i, u := range pc.MediaURLs {
		postMedia := models.PostMedia{
			PostID:       postID,
			MediaURL:     u,
			DisplayOrder: i,
		}
		if err = s.pm.Create(ctx, tx, &postMedia); err != nil {
			return 0, 0, fmt.Errorf("error saving media file: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if pc.ScheduledTime != nil {
		delay = pc.ScheduledTime.Sub(s.now())
		if delay < 0 {
			delay = 0
		}
	}

	return postID, delay, nil
}

// ownedAccounts resolves ids to the user's accounts, keeping the order of ids.
func (s *postService) ownedAccounts(ctx context.Context, userID int64, ids []int64) ([]*models.SocialAccount, error) {
	found, err := s.ac.ListByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("error checking social accounts: %w", err)
	}

	byID := make(map[int64]*models.SocialAccount, len(found))
	for _, acc := range found {
		byID[acc.ID] = acc
	}

	accounts := make([]*models.SocialAccount, 0, len(ids))
	for _, id := range ids {
		acc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, id)
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// PostInfo returns the post together with its media and posting history.
func (s *postService) PostInfo(ctx context.Context, postID, userID int64) (*transfer.PostDetails, error) {
	var err error

	if userID == 0 {
		err = errors.New("User is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	if postID == 0 {
		err = errors.New("post id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	isValid, err := s.pr.CheckByUserID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if !isValid {
		slog.Info(ErrPostNotFound.Error(), "post_id", postID)
		return nil, ErrPostNotFound
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("Error getting post info")
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	media, err := s.pm.ListByPostID(ctx, postID)
	if err != nil {
		slog.Error("error listing post media", "post_id", postID, "error", err)
		return nil, fmt.Errorf("Error getting post media")
	}

	history, err := s.ph.ListByPostID(ctx, postID)
	if err != nil {
		slog.Error("error listing posting history", "post_id", postID, "error", err)
		return nil, fmt.Errorf("Error getting posting history")
	}

	details := &transfer.PostDetails{
		Post:    post,
		Media:   media,
		History: history,
	}
	if details.Media == nil {
		details.Media = []*models.PostMedia{}
	}
	if details.History == nil {
		details.History = []*models.PostingHistory{}
	}
	return details, nil
}

func (s *postService) List(ctx context.Context, userID int64) ([]*models.Post, error) {
	posts, err := s.pr.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Error getting posts")
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

func (s *postService) MarkFailed(ctx context.Context, postID int64) error {
	return s.pr.UpdatePostStatus(ctx, models.PostStatusFailed, postID)
}

func (s *postService) Remove(ctx context.Context, userID, postID int64) (err error) {
	if userID == 0 {
		err = errors.New("User is not valid")
		slog.Info(err.Error())
		return err
	}

	if postID == 0 {
		err = errors.New("post_id is not valid")
		slog.Info(err.Error())
		return err
	}

	isValid, err := s.pr.CheckByUserID(ctx, postID, userID)
	if err != nil {
		return err
	}

	if !isValid {
		slog.Info(ErrPostNotFound.Error(), "post_id", postID)
		return ErrPostNotFound
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = s.pm.RemoveByPostID(ctx, tx, postID); err != nil {
		return fmt.Errorf("Error removing post")
	}
	if err = s.sa.RemoveByPostID(ctx, tx, postID); err != nil {
		return fmt.Errorf("Error removing post")
	}
	if err = s.pr.Remove(ctx, tx, postID); err != nil {
		return fmt.Errorf("Error removing post")
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
