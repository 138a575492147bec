package services

import (
	"sort"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

const popularTagLimit = 5

// StatsService computes aggregate statistics by scanning the collections
type StatsService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *StatsService {
	return &StatsService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// ComputeStats scans posts and comments and tallies the aggregates
func (s *StatsService) ComputeStats() (*models.Stats, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	totalComments, err := s.commentRepo.Count()
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalPosts:    len(posts),
		TotalComments: totalComments,
		TagFrequency:  make(map[string]int),
	}

	for _, post := range posts {
		if post.Published {
			stats.PublishedPosts++
		} else {
			stats.DraftPosts++
		}
		stats.TotalViews += post.Views
		for _, tag := range post.Tags {
			stats.TagFrequency[tag]++
		}
	}

	popular := tagCountsFromFrequency(stats.TagFrequency)
	if len(popular) > popularTagLimit {
		popular = popular[:popularTagLimit]
	}
	stats.PopularTags = popular

	return stats, nil
}

// TagCounts returns every distinct tag with the number of posts carrying
// it, ordered by count descending then name ascending.
func (s *StatsService) TagCounts() ([]models.TagCount, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	freq := make(map[string]int)
	for _, post := range posts {
		for _, tag := range post.Tags {
			freq[tag]++
		}
	}

	return tagCountsFromFrequency(freq), nil
}

func tagCountsFromFrequency(freq map[string]int) []models.TagCount {
	counts := make([]models.TagCount, 0, len(freq))
	for name, count := range freq {
		counts = append(counts, models.TagCount{Name: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}
