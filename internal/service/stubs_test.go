package service

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/repository"
)

// Function-field stubs for the repository interfaces. Tests set only the
// fields they need; an unset field panics, which surfaces unexpected calls.

type stubVideoRepo struct {
	create         func(ctx context.Context, video *models.Video) error
	getByID        func(ctx context.Context, id uint) (*models.Video, error)
	list           func(ctx context.Context, opts repository.VideoListOptions) ([]*models.Video, int64, error)
	update         func(ctx context.Context, video *models.Video) error
	deleteOwned    func(ctx context.Context, id, ownerID uint) (bool, error)
	incrementViews func(ctx context.Context, id uint) error
}

func (s *stubVideoRepo) Create(ctx context.Context, video *models.Video) error {
	return s.create(ctx, video)
}
func (s *stubVideoRepo) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	return s.getByID(ctx, id)
}
func (s *stubVideoRepo) List(ctx context.Context, opts repository.VideoListOptions) ([]*models.Video, int64, error) {
	return s.list(ctx, opts)
}
func (s *stubVideoRepo) Update(ctx context.Context, video *models.Video) error {
	return s.update(ctx, video)
}
func (s *stubVideoRepo) DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	return s.deleteOwned(ctx, id, ownerID)
}
func (s *stubVideoRepo) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViews(ctx, id)
}

type stubStatsRepo struct {
	channelStats func(ctx context.Context, username string, viewerID uint) (*models.ChannelStats, error)
}

func (s *stubStatsRepo) ChannelStats(ctx context.Context, username string, viewerID uint) (*models.ChannelStats, error) {
	return s.channelStats(ctx, username, viewerID)
}

type stubCommentRepo struct {
	create      func(ctx context.Context, comment *models.Comment) error
	getByID     func(ctx context.Context, id uint) (*models.Comment, error)
	listByVideo func(ctx context.Context, videoID uint, limit, offset int) ([]*models.Comment, int64, error)
	update      func(ctx context.Context, comment *models.Comment) error
	del         func(ctx context.Context, id uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.create(ctx, comment)
}
func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}
func (s *stubCommentRepo) ListByVideo(ctx context.Context, videoID uint, limit, offset int) ([]*models.Comment, int64, error) {
	return s.listByVideo(ctx, videoID, limit, offset)
}
func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	return s.update(ctx, comment)
}
func (s *stubCommentRepo) Delete(ctx context.Context, id uint) error {
	return s.del(ctx, id)
}

type stubTweetRepo struct {
	create     func(ctx context.Context, tweet *models.Tweet) error
	getByID    func(ctx context.Context, id uint) (*models.Tweet, error)
	listByUser func(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, int64, error)
	update     func(ctx context.Context, tweet *models.Tweet) error
	del        func(ctx context.Context, id uint) error
}

func (s *stubTweetRepo) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.create(ctx, tweet)
}
func (s *stubTweetRepo) GetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	return s.getByID(ctx, id)
}
func (s *stubTweetRepo) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, int64, error) {
	return s.listByUser(ctx, userID, limit, offset)
}
func (s *stubTweetRepo) Update(ctx context.Context, tweet *models.Tweet) error {
	return s.update(ctx, tweet)
}
func (s *stubTweetRepo) Delete(ctx context.Context, id uint) error {
	return s.del(ctx, id)
}

type stubLikeRepo struct {
	create          func(ctx context.Context, like *models.Like) error
	findByTarget    func(ctx context.Context, userID uint, kind repository.LikeTargetKind, targetID uint) (*models.Like, error)
	del             func(ctx context.Context, id uint) error
	listLikedVideos func(ctx context.Context, userID uint) ([]*models.Video, error)
}

func (s *stubLikeRepo) Create(ctx context.Context, like *models.Like) error {
	return s.create(ctx, like)
}
func (s *stubLikeRepo) FindByTarget(ctx context.Context, userID uint, kind repository.LikeTargetKind, targetID uint) (*models.Like, error) {
	return s.findByTarget(ctx, userID, kind, targetID)
}
func (s *stubLikeRepo) Delete(ctx context.Context, id uint) error {
	return s.del(ctx, id)
}
func (s *stubLikeRepo) ListLikedVideos(ctx context.Context, userID uint) ([]*models.Video, error) {
	return s.listLikedVideos(ctx, userID)
}

type stubSubscriptionRepo struct {
	create                 func(ctx context.Context, sub *models.Subscription) error
	findPair               func(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error)
	del                    func(ctx context.Context, id uint) error
	listSubscribers        func(ctx context.Context, channelID uint) ([]*models.Subscription, error)
	listSubscribedChannels func(ctx context.Context, subscriberID uint) ([]*models.Subscription, error)
}

func (s *stubSubscriptionRepo) Create(ctx context.Context, sub *models.Subscription) error {
	return s.create(ctx, sub)
}
func (s *stubSubscriptionRepo) FindPair(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error) {
	return s.findPair(ctx, subscriberID, channelID)
}
func (s *stubSubscriptionRepo) Delete(ctx context.Context, id uint) error {
	return s.del(ctx, id)
}
func (s *stubSubscriptionRepo) ListSubscribers(ctx context.Context, channelID uint) ([]*models.Subscription, error) {
	return s.listSubscribers(ctx, channelID)
}
func (s *stubSubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriberID uint) ([]*models.Subscription, error) {
	return s.listSubscribedChannels(ctx, subscriberID)
}

type stubPlaylistRepo struct {
	create            func(ctx context.Context, playlist *models.Playlist) error
	getByID           func(ctx context.Context, id uint) (*models.Playlist, error)
	getByOwnerAndName func(ctx context.Context, ownerID uint, name string) (*models.Playlist, error)
	listByOwner       func(ctx context.Context, ownerID uint) ([]*models.Playlist, error)
	update            func(ctx context.Context, playlist *models.Playlist) error
	del               func(ctx context.Context, id uint) error
	addVideo          func(ctx context.Context, playlistID, videoID uint) error
	removeVideo       func(ctx context.Context, playlistID, videoID uint) error
}

func (s *stubPlaylistRepo) Create(ctx context.Context, playlist *models.Playlist) error {
	return s.create(ctx, playlist)
}
func (s *stubPlaylistRepo) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	return s.getByID(ctx, id)
}
func (s *stubPlaylistRepo) GetByOwnerAndName(ctx context.Context, ownerID uint, name string) (*models.Playlist, error) {
	return s.getByOwnerAndName(ctx, ownerID, name)
}
func (s *stubPlaylistRepo) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Playlist, error) {
	return s.listByOwner(ctx, ownerID)
}
func (s *stubPlaylistRepo) Update(ctx context.Context, playlist *models.Playlist) error {
	return s.update(ctx, playlist)
}
func (s *stubPlaylistRepo) Delete(ctx context.Context, id uint) error {
	return s.del(ctx, id)
}
func (s *stubPlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID uint) error {
	return s.addVideo(ctx, playlistID, videoID)
}
func (s *stubPlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID uint) error {
	return s.removeVideo(ctx, playlistID, videoID)
}

type stubUserRepo struct {
	create        func(ctx context.Context, user *models.User) error
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	update        func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}
func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}
func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.update(ctx, user)
}
