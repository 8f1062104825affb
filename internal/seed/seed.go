// Package seed creates demo data for development databases. It is never
// wired into the production server.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"viewtube/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options tunes the amount and shape of seeded data.
type Options struct {
	Users          int
	VideosPerUser  int
	CommentsTarget int
	TweetsTarget   int
	MaxDays        int // how far back created_at timestamps spread
}

// Seeder creates and persists demo entities.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll wipes every seeded table. Order matters for the foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"playlist_videos", "playlists", "likes", "subscriptions",
		"comments", "tweets", "videos", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")
	return nil
}

// Run seeds the full demo data set.
func (s *Seeder) Run() error {
	users, err := s.createUsers()
	if err != nil {
		return err
	}
	videos, err := s.createVideos(users)
	if err != nil {
		return err
	}
	if err := s.createComments(users, videos); err != nil {
		return err
	}
	if err := s.createTweets(users); err != nil {
		return err
	}
	if err := s.addLikes(users, videos); err != nil {
		return err
	}
	if err := s.addSubscriptions(users); err != nil {
		return err
	}
	if err := s.createPlaylists(users, videos); err != nil {
		return err
	}
	log.Printf("Seeded %d users and %d videos", len(users), len(videos))
	return nil
}

func (s *Seeder) spreadTime() time.Time {
	daysBack := s.rng.Intn(s.opts.MaxDays)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(s.rng.Intn(24)) * time.Hour).
		Add(-time.Duration(s.rng.Intn(60)) * time.Minute)
}

func (s *Seeder) createUsers() ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!demo"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		users = append(users, models.User{
			Username:  fmt.Sprintf("%s_%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:     gofakeit.Email(),
			Password:  string(hashed),
			FullName:  gofakeit.Name(),
			Bio:       gofakeit.Sentence(10),
			Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
			CreatedAt: s.spreadTime(),
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seeding users: %w", err)
	}
	return users, nil
}

func (s *Seeder) createVideos(users []models.User) ([]models.Video, error) {
	videos := make([]models.Video, 0, len(users)*s.opts.VideosPerUser)
	for _, user := range users {
		for i := 0; i < s.opts.VideosPerUser; i++ {
			videos = append(videos, models.Video{
				UserID:       user.ID,
				Title:        gofakeit.Sentence(5),
				Description:  gofakeit.Paragraph(1, 3, 8, "\n"),
				VideoURL:     fmt.Sprintf("https://media.viewtube.dev/videos/%s.mp4", gofakeit.UUID()),
				ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s/640/360", gofakeit.UUID()),
				Duration:     gofakeit.Number(30, 3600),
				Views:        int64(gofakeit.Number(0, 250000)),
				IsPublished:  s.rng.Intn(10) < 8,
				CreatedAt:    s.spreadTime(),
			})
		}
	}
	if len(videos) == 0 {
		return videos, nil
	}
	if err := s.db.Create(&videos).Error; err != nil {
		return nil, fmt.Errorf("seeding videos: %w", err)
	}
	return videos, nil
}

func (s *Seeder) createComments(users []models.User, videos []models.Video) error {
	if len(users) == 0 || len(videos) == 0 {
		return nil
	}
	comments := make([]models.Comment, 0, s.opts.CommentsTarget)
	for i := 0; i < s.opts.CommentsTarget; i++ {
		comments = append(comments, models.Comment{
			UserID:    users[s.rng.Intn(len(users))].ID,
			VideoID:   videos[s.rng.Intn(len(videos))].ID,
			Content:   gofakeit.Sentence(gofakeit.Number(5, 25)),
			CreatedAt: s.spreadTime(),
		})
	}
	if err := s.db.Create(&comments).Error; err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}
	return nil
}

func (s *Seeder) createTweets(users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	tweets := make([]models.Tweet, 0, s.opts.TweetsTarget)
	for i := 0; i < s.opts.TweetsTarget; i++ {
		tweets = append(tweets, models.Tweet{
			UserID:    users[s.rng.Intn(len(users))].ID,
			Content:   gofakeit.Sentence(gofakeit.Number(4, 20)),
			CreatedAt: s.spreadTime(),
		})
	}
	if err := s.db.Create(&tweets).Error; err != nil {
		return fmt.Errorf("seeding tweets: %w", err)
	}
	return nil
}

// addLikes gives each user a random sample of liked videos. The (user,
// video) pair is deduplicated up front so inserts never hit the unique
// index.
func (s *Seeder) addLikes(users []models.User, videos []models.Video) error {
	if len(users) == 0 || len(videos) == 0 {
		return nil
	}
	var likes []models.Like
	for _, user := range users {
		seen := map[uint]bool{}
		for i := 0; i < s.rng.Intn(10); i++ {
			video := videos[s.rng.Intn(len(videos))]
			if seen[video.ID] {
				continue
			}
			seen[video.ID] = true
			videoID := video.ID
			likes = append(likes, models.Like{
				UserID:    user.ID,
				VideoID:   &videoID,
				CreatedAt: s.spreadTime(),
			})
		}
	}
	if len(likes) == 0 {
		return nil
	}
	if err := s.db.Create(&likes).Error; err != nil {
		return fmt.Errorf("seeding likes: %w", err)
	}
	return nil
}

func (s *Seeder) addSubscriptions(users []models.User) error {
	if len(users) < 2 {
		return nil
	}
	var subs []models.Subscription
	for _, user := range users {
		seen := map[uint]bool{}
		for i := 0; i < s.rng.Intn(6); i++ {
			channel := users[s.rng.Intn(len(users))]
			if channel.ID == user.ID || seen[channel.ID] {
				continue
			}
			seen[channel.ID] = true
			subs = append(subs, models.Subscription{
				SubscriberID: user.ID,
				ChannelID:    channel.ID,
				CreatedAt:    s.spreadTime(),
			})
		}
	}
	if len(subs) == 0 {
		return nil
	}
	if err := s.db.Create(&subs).Error; err != nil {
		return fmt.Errorf("seeding subscriptions: %w", err)
	}
	return nil
}

func (s *Seeder) createPlaylists(users []models.User, videos []models.Video) error {
	if len(users) == 0 || len(videos) == 0 {
		return nil
	}
	names := []string{"Watch Later", "Favorites", "Tutorials", "Music", "Deep Dives"}
	for _, user := range users {
		count := s.rng.Intn(3)
		for i := 0; i < count && i < len(names); i++ {
			playlist := models.Playlist{
				UserID:      user.ID,
				Name:        names[i],
				Description: gofakeit.Sentence(8),
			}
			if err := s.db.Create(&playlist).Error; err != nil {
				return fmt.Errorf("seeding playlists: %w", err)
			}
			seen := map[uint]bool{}
			for j := 0; j < s.rng.Intn(8); j++ {
				video := videos[s.rng.Intn(len(videos))]
				if seen[video.ID] {
					continue
				}
				seen[video.ID] = true
				member := models.PlaylistVideo{PlaylistID: playlist.ID, VideoID: video.ID}
				if err := s.db.Create(&member).Error; err != nil {
					return fmt.Errorf("seeding playlist members: %w", err)
				}
			}
		}
	}
	return nil
}
