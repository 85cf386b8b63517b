package services

import (
	"fmt"

	"geopost-api/models"
	"geopost-api/repositories"
)

type PostService interface {
	CreatePost(req models.PostRequest, ownerID uint) (*models.PostResponse, error)
	GetPost(id uint) (*models.PostResponse, error)
	GetPosts(date *models.DateOnly) ([]models.PostResponse, error)
	ReplacePost(id uint, req models.PostRequest, callerID uint) (*models.PostResponse, error)
	PatchPost(id uint, req models.PostPatchRequest, callerID uint) (*models.PostResponse, error)
	DeletePost(id uint, callerID uint) error
}

type postService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
}

func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

// CreatePost stamps the owner from the authenticated identity; a
// client-supplied owner field is never trusted.
func (s *postService) CreatePost(req models.PostRequest, ownerID uint) (*models.PostResponse, error) {
	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      *req.Title,
		Body:       *req.Body,
		Image:      *req.Image,
		OwnerID:    ownerID,
		Lat:        *req.Lat,
		Lng:        *req.Lng,
		Date:       *req.Date,
		Time:       *req.Time,
		IsFree:     *req.IsFree,
		CategoryID: req.CategoryID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.GetPost(post.ID)
}

func (s *postService) GetPost(id uint) (*models.PostResponse, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	resp := toPostResponse(post)
	return &resp, nil
}

func (s *postService) GetPosts(date *models.DateOnly) ([]models.PostResponse, error) {
	var (
		posts []models.Post
		err   error
	)
	if date != nil {
		posts, err = s.postRepo.GetByDate(*date)
	} else {
		posts, err = s.postRepo.GetAll()
	}
	if err != nil {
		return nil, err
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toPostResponse(&posts[i]))
	}
	return responses, nil
}

// ReplacePost is the PUT path: every base field is required and written.
func (s *postService) ReplacePost(id uint, req models.PostRequest, callerID uint) (*models.PostResponse, error) {
	post, err := s.ownedPost(id, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	post.Title = *req.Title
	post.Body = *req.Body
	post.Image = *req.Image
	post.Lat = *req.Lat
	post.Lng = *req.Lng
	post.Date = *req.Date
	post.Time = *req.Time
	post.IsFree = *req.IsFree
	post.CategoryID = req.CategoryID

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return s.GetPost(post.ID)
}

// PatchPost applies only the fields present in the request; omitted
// fields keep their prior values. Concurrent patches to the same post are
// last-write-wins; there is no version column.
func (s *postService) PatchPost(id uint, req models.PostPatchRequest, callerID uint) (*models.PostResponse, error) {
	post, err := s.ownedPost(id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Lat != nil {
		post.Lat = *req.Lat
	}
	if req.Lng != nil {
		post.Lng = *req.Lng
	}
	if req.Date != nil {
		post.Date = *req.Date
	}
	if req.Time != nil {
		post.Time = *req.Time
	}
	if req.IsFree != nil {
		post.IsFree = *req.IsFree
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(req.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = req.CategoryID
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return s.GetPost(post.ID)
}

func (s *postService) DeletePost(id uint, callerID uint) error {
	if _, err := s.ownedPost(id, callerID); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}

func (s *postService) ownedPost(id uint, callerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if post.OwnerID != callerID {
		return nil, fmt.Errorf("not the post owner: %w", models.ErrForbidden)
	}
	return post, nil
}

func (s *postService) checkCategory(id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.categoryRepo.GetByID(*id); err != nil {
		return notFoundOr(err)
	}
	return nil
}

func toPostResponse(post *models.Post) models.PostResponse {
	return models.PostResponse{
		ID:         post.ID,
		Owner:      post.Owner.Username,
		OwnerID:    post.OwnerID,
		Title:      post.Title,
		Body:       post.Body,
		Image:      post.Image,
		Lat:        post.Lat,
		Lng:        post.Lng,
		Date:       post.Date,
		Time:       post.Time,
		IsFree:     post.IsFree,
		CategoryID: post.CategoryID,
	}
}
