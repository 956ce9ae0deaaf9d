package mock

import (
	"fmt"
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// In-memory repositories for tests. They mirror the badger-backed
// implementations, including identifier assignment on Create, and count
// writes so tests can assert that a rejected request touched nothing.

type UserRepository struct {
	users  map[string]*models.User
	nextID int
	Writes int
	mutex  sync.RWMutex
}

type PostRepository struct {
	posts  map[string]*models.Post
	nextID int
	Writes int
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments map[string]*models.Comment
	nextID   int
	Writes   int
	mutex    sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User), nextID: 1}
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*models.Post), nextID: 1}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[string]*models.Comment), nextID: 1}
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = fmt.Sprintf("user%04d", m.nextID)
	m.nextID++
	user.BeforeCreate()
	m.users[user.ID] = user
	m.Writes++
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) List() ([]*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var users []*models.User
	for i := 1; i < m.nextID; i++ {
		if user, exists := m.users[fmt.Sprintf("user%04d", i)]; exists {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (m *UserRepository) Update(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	m.Writes++
	return nil
}

func (m *UserRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	m.Writes++
	return nil
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = fmt.Sprintf("post%04d", m.nextID)
	m.nextID++
	post.BeforeCreate()
	m.posts[post.ID] = post
	m.Writes++
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for i := 1; i < m.nextID; i++ {
		if post, exists := m.posts[fmt.Sprintf("post%04d", i)]; exists {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

func (m *PostRepository) ListByAuthor(userID string) ([]*models.Post, error) {
	all, _ := m.List()
	var authored []*models.Post
	for _, post := range all {
		if post.User == userID {
			authored = append(authored, post)
		}
	}
	return authored, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *post
	m.posts[post.ID] = &copied
	m.Writes++
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	m.Writes++
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = fmt.Sprintf("comment%04d", m.nextID)
	m.nextID++
	comment.BeforeCreate()
	m.comments[comment.ID] = comment
	m.Writes++
	return nil
}

func (m *CommentRepository) GetByID(id string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *comment
	return &copied, nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for i := 1; i < m.nextID; i++ {
		if comment, exists := m.comments[fmt.Sprintf("comment%04d", i)]; exists {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

func (m *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	all, _ := m.List()
	var matched []*models.Comment
	for _, comment := range all {
		if comment.Post == postID {
			matched = append(matched, comment)
		}
	}
	return matched, nil
}

func (m *CommentRepository) ListByAuthor(userID string) ([]*models.Comment, error) {
	all, _ := m.List()
	var authored []*models.Comment
	for _, comment := range all {
		if comment.User == userID {
			authored = append(authored, comment)
		}
	}
	return authored, nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *comment
	m.comments[comment.ID] = &copied
	m.Writes++
	return nil
}

func (m *CommentRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	m.Writes++
	return nil
}
