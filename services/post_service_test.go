package services

import (
	"testing"

	"geopost-api/models"
	"geopost-api/repositories"
	"geopost-api/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PostServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	svc      PostService
	owner    *models.User
	stranger *models.User
}

func (s *PostServiceTestSuite) SetupTest() {
	s.db = testutil.OpenTestDB(s.T())
	postRepo := repositories.NewPostRepository(s.db)
	categoryRepo := repositories.NewCategoryRepository(s.db)
	s.svc = NewPostService(postRepo, categoryRepo)

	s.owner = &models.User{Username: "owner", Email: "owner@example.com", Password: "x", IsVIP: true}
	s.stranger = &models.User{Username: "stranger", Email: "stranger@example.com", Password: "x"}
	s.Require().NoError(s.db.Create(s.owner).Error)
	s.Require().NoError(s.db.Create(s.stranger).Error)
}

func (s *PostServiceTestSuite) fullRequest(title, dateStr string) models.PostRequest {
	body := "body"
	image := "https://img.example.com/1.png"
	lat := 41.0
	lng := 29.0
	date, err := models.ParseDateOnly(dateStr)
	s.Require().NoError(err)
	tod, err := models.ParseTimeOfDay("18:30:00")
	s.Require().NoError(err)
	isFree := true
	return models.PostRequest{
		Title:  &title,
		Body:   &body,
		Image:  &image,
		Lat:    &lat,
		Lng:    &lng,
		Date:   &date,
		Time:   &tod,
		IsFree: &isFree,
	}
}

func (s *PostServiceTestSuite) TestCreateStampsOwnerFromIdentity() {
	post, err := s.svc.CreatePost(s.fullRequest("first", "2024-07-15"), s.owner.ID)
	s.Require().NoError(err)

	s.Equal(s.owner.ID, post.OwnerID)
	s.Equal("owner", post.Owner)
	s.Equal("first", post.Title)
	s.Equal("2024-07-15", post.Date.String())
	s.Equal("18:30:00", post.Time.String())
}

func (s *PostServiceTestSuite) TestGetMissingPost() {
	_, err := s.svc.GetPost(999)
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *PostServiceTestSuite) TestPatchByNonOwnerForbidden() {
	post, err := s.svc.CreatePost(s.fullRequest("mine", "2024-07-15"), s.owner.ID)
	s.Require().NoError(err)

	title := "stolen"
	_, err = s.svc.PatchPost(post.ID, models.PostPatchRequest{Title: &title}, s.stranger.ID)
	s.ErrorIs(err, models.ErrForbidden)

	unchanged, err := s.svc.GetPost(post.ID)
	s.Require().NoError(err)
	s.Equal("mine", unchanged.Title)
}

func (s *PostServiceTestSuite) TestPatchAppliesOnlySuppliedFields() {
	post, err := s.svc.CreatePost(s.fullRequest("before", "2024-07-15"), s.owner.ID)
	s.Require().NoError(err)

	title := "after"
	updated, err := s.svc.PatchPost(post.ID, models.PostPatchRequest{Title: &title}, s.owner.ID)
	s.Require().NoError(err)

	s.Equal("after", updated.Title)
	// Omitted fields keep their prior values.
	s.Equal(post.Lat, updated.Lat)
	s.Equal(post.Lng, updated.Lng)
	s.Equal(post.Body, updated.Body)
	s.Equal(post.Date.String(), updated.Date.String())

	// Concurrent patches to the same post are last-write-wins: there is no
	// version column, so the race is accepted rather than guarded.
}

func (s *PostServiceTestSuite) TestReplaceOverwritesAllFields() {
	post, err := s.svc.CreatePost(s.fullRequest("before", "2024-07-15"), s.owner.ID)
	s.Require().NoError(err)

	req := s.fullRequest("after", "2024-08-01")
	lat := 10.5
	req.Lat = &lat
	updated, err := s.svc.ReplacePost(post.ID, req, s.owner.ID)
	s.Require().NoError(err)

	s.Equal("after", updated.Title)
	s.Equal(10.5, updated.Lat)
	s.Equal("2024-08-01", updated.Date.String())
}

func (s *PostServiceTestSuite) TestListOrderedByID() {
	for _, title := range []string{"a", "b", "c"} {
		_, err := s.svc.CreatePost(s.fullRequest(title, "2024-07-15"), s.owner.ID)
		s.Require().NoError(err)
	}

	posts, err := s.svc.GetPosts(nil)
	s.Require().NoError(err)
	s.Require().Len(posts, 3)
	s.Less(posts[0].ID, posts[1].ID)
	s.Less(posts[1].ID, posts[2].ID)
}

func (s *PostServiceTestSuite) TestListFilteredByDate() {
	_, err := s.svc.CreatePost(s.fullRequest("day1-a", "2024-07-15"), s.owner.ID)
	s.Require().NoError(err)
	_, err = s.svc.CreatePost(s.fullRequest("day2", "2024-07-16"), s.owner.ID)
	s.Require().NoError(err)
	_, err = s.svc.CreatePost(s.fullRequest("day1-b", "2024-07-15"), s.owner.ID)
	s.Require().NoError(err)

	date, err := models.ParseDateOnly("2024-07-15")
	s.Require().NoError(err)

	posts, err := s.svc.GetPosts(&date)
	s.Require().NoError(err)
	s.Require().Len(posts, 2)
	for _, p := range posts {
		s.Equal("2024-07-15", p.Date.String())
	}
}

func (s *PostServiceTestSuite) TestCreateWithMissingCategory() {
	req := s.fullRequest("categorized", "2024-07-15")
	missing := uint(42)
	req.CategoryID = &missing

	_, err := s.svc.CreatePost(req, s.owner.ID)
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *PostServiceTestSuite) TestDeleteByNonOwnerForbidden() {
	post, err := s.svc.CreatePost(s.fullRequest("keep", "2024-07-15"), s.owner.ID)
	s.Require().NoError(err)

	s.ErrorIs(s.svc.DeletePost(post.ID, s.stranger.ID), models.ErrForbidden)

	s.Require().NoError(s.svc.DeletePost(post.ID, s.owner.ID))
	_, err = s.svc.GetPost(post.ID)
	s.ErrorIs(err, models.ErrNotFound)
}

func TestPostServiceSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}
