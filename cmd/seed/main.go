// Command seed populates a development database with demo data.
package main

import (
	"flag"
	"log"

	"viewtube/internal/config"
	"viewtube/internal/database"
	"viewtube/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	videosPerUser := flag.Int("videos", 4, "Videos per user")
	numComments := flag.Int("comments", 300, "Total comments to create")
	numTweets := flag.Int("tweets", 100, "Total tweets to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d videos each, clean=%v\n", *numUsers, *videosPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		Users:          *numUsers,
		VideosPerUser:  *videosPerUser,
		CommentsTarget: *numComments,
		TweetsTarget:   *numTweets,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}
	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Demo users share the password: Password123!demo")
}
