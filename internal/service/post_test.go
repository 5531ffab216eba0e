package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"activies-backend/internal/model"
)

// memPostRepository is an in-memory repository.PostRepository with the
// same like semantics as the real table: a unique (uid, pid) pair,
// idempotent insert, delete-if-present.
type memPostRepository struct {
	mu    sync.Mutex
	posts map[int64]model.Post
	likes map[[2]int64]bool
}

func newMemPostRepository() *memPostRepository {
	return &memPostRepository{
		posts: make(map[int64]model.Post),
		likes: make(map[[2]int64]bool),
	}
}

func (m *memPostRepository) Create(ctx context.Context, uid int64, title, description, location string, pic *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := int64(len(m.posts) + 1)
	m.posts[id] = model.Post{ID: id, UID: uid, Title: title, Description: description, Location: location, Pic: pic}
	return nil
}

func (m *memPostRepository) List(ctx context.Context) ([]model.PostSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	summaries := []model.PostSummary{}
	for _, p := range m.posts {
		summaries = append(summaries, model.PostSummary{ID: p.ID, Title: p.Title, Description: p.Description, Pic: p.Pic, Author: "author"})
	}
	return summaries, nil
}

func (m *memPostRepository) GetDetail(ctx context.Context, postID, viewerID int64) (*model.PostDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return &model.PostDetail{
		ID:          p.ID,
		UID:         p.UID,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Pic:         p.Pic,
		Likes:       m.countLocked(postID),
		ILiked:      m.likes[[2]int64{viewerID, postID}],
	}, nil
}

func (m *memPostRepository) Like(ctx context.Context, uid, postID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.likes[[2]int64{uid, postID}] = true
	return nil
}

func (m *memPostRepository) Unlike(ctx context.Context, uid, postID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.likes, [2]int64{uid, postID})
	return nil
}

func (m *memPostRepository) CountLikes(ctx context.Context, postID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countLocked(postID), nil
}

func (m *memPostRepository) countLocked(postID int64) int64 {
	var n int64
	for pair := range m.likes {
		if pair[1] == postID {
			n++
		}
	}
	return n
}

func TestPostService_Like_Idempotent(t *testing.T) {
	repo := newMemPostRepository()
	svc := NewPostService(repo)
	ctx := context.Background()

	repo.Create(ctx, 1, "Hike", "", "", nil)

	first, err := svc.Like(ctx, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 1 {
		t.Errorf("likes after first like = %d, want 1", first)
	}

	second, err := svc.Like(ctx, 2, 1)
	if err != nil {
		t.Fatalf("repeat like must not error, got: %v", err)
	}
	if second != 1 {
		t.Errorf("likes after repeat like = %d, want 1", second)
	}
}

func TestPostService_Unlike_AbsentRow(t *testing.T) {
	repo := newMemPostRepository()
	svc := NewPostService(repo)
	ctx := context.Background()

	repo.Create(ctx, 1, "Hike", "", "", nil)
	svc.Like(ctx, 3, 1)

	// User 2 never liked the post; unliking must succeed and report the
	// unchanged count.
	likes, err := svc.Unlike(ctx, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if likes != 1 {
		t.Errorf("likes = %d, want 1", likes)
	}
}

func TestPostService_LikeUnlike_RoundTrip(t *testing.T) {
	repo := newMemPostRepository()
	svc := NewPostService(repo)
	ctx := context.Background()

	repo.Create(ctx, 1, "Hike", "up the hill", "Bergen", nil)

	if likes, _ := svc.Like(ctx, 2, 1); likes != 1 {
		t.Errorf("likes after like = %d, want 1", likes)
	}

	detail, err := svc.Show(ctx, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Likes != 1 || !detail.ILiked {
		t.Errorf("detail = likes %d, i_liked %v; want 1, true", detail.Likes, detail.ILiked)
	}

	if likes, _ := svc.Unlike(ctx, 2, 1); likes != 0 {
		t.Errorf("likes after unlike = %d, want 0", likes)
	}

	detail, err = svc.Show(ctx, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Likes != 0 || detail.ILiked {
		t.Errorf("detail = likes %d, i_liked %v; want 0, false", detail.Likes, detail.ILiked)
	}
}

func TestPostService_Show_NotFound(t *testing.T) {
	svc := NewPostService(newMemPostRepository())

	_, err := svc.Show(context.Background(), 999, 1)

	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrPostNotFound)
	}
}

func TestPostService_ConcurrentLikes(t *testing.T) {
	repo := newMemPostRepository()
	svc := NewPostService(repo)
	ctx := context.Background()

	repo.Create(ctx, 1, "Hike", "", "", nil)

	const users = 32
	var wg sync.WaitGroup
	for uid := int64(1); uid <= users; uid++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			if _, err := svc.Like(ctx, uid, 1); err != nil {
				t.Errorf("like from uid %d failed: %v", uid, err)
			}
		}(uid)
	}
	wg.Wait()

	likes, err := svc.Like(ctx, 1, 1) // idempotent recount
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if likes != users {
		t.Errorf("likes = %d, want %d", likes, users)
	}
}
