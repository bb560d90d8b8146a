package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

type URLRepositoryTestSuite struct {
	suite.Suite
	repo *URLRepository
}

func (suite *URLRepositoryTestSuite) SetupSubTest() {
	suite.repo = NewURLRepository()
}

func (suite *URLRepositoryTestSuite) save(shortCode, longURL, ownerID string) {
	_, err := suite.repo.Save(context.Background(), entity.NewURL(shortCode, longURL, ownerID, time.Now()))
	suite.Require().NoError(err)
}

func (suite *URLRepositoryTestSuite) TestSave() {
	suite.Run("short code exists", func() {
		suite.save("abc123", "https://example.com", "user1")

		url, err := suite.repo.Save(context.Background(), entity.NewURL("abc123", "https://example.org", "user2", time.Now()))

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrShortCodeExists)
		suite.Nil(url)
	})

	suite.Run("canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		url, err := suite.repo.Save(ctx, entity.NewURL("abc123", "https://example.com", "user1", time.Now()))

		suite.ErrorIs(err, context.Canceled)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		url, err := suite.repo.Save(context.Background(), entity.NewURL("abc123", "https://example.com", "user1", time.Now()))

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("abc123", url.ShortCode)
		suite.Equal("https://example.com", url.LongURL)
		suite.Equal("user1", url.OwnerID)
		suite.Zero(url.VisitCount)
		suite.Empty(url.Visits)
		suite.Empty(url.UniqueVisitors)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveByShortCode() {
	suite.Run("url not found", func() {
		url, err := suite.repo.RetrieveByShortCode(context.Background(), "abc123")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("returned copy is detached", func() {
		suite.save("abc123", "https://example.com", "user1")

		url, err := suite.repo.RetrieveByShortCode(context.Background(), "abc123")
		suite.Require().NoError(err)

		url.LongURL = "https://evil.example"
		url.RecordVisit(time.Now())

		stored, err := suite.repo.RetrieveByShortCode(context.Background(), "abc123")
		suite.Require().NoError(err)
		suite.Equal("https://example.com", stored.LongURL)
		suite.Zero(stored.VisitCount)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveByOwner() {
	suite.Run("no urls", func() {
		urls, err := suite.repo.RetrieveByOwner(context.Background(), "user1")

		suite.NoError(err)
		suite.NotNil(urls)
		suite.Empty(urls)
	})

	suite.Run("partitioned by owner", func() {
		suite.save("abc123", "https://example.com", "user1")
		suite.save("def456", "https://example.org", "user2")
		suite.save("ghi789", "https://example.net", "user1")

		urls, err := suite.repo.RetrieveByOwner(context.Background(), "user1")

		suite.NoError(err)
		suite.Len(urls, 2)
		suite.Contains(urls, "abc123")
		suite.Contains(urls, "ghi789")
		suite.NotContains(urls, "def456")

		urls, err = suite.repo.RetrieveByOwner(context.Background(), "user3")

		suite.NoError(err)
		suite.Empty(urls)
	})
}

func (suite *URLRepositoryTestSuite) TestUpdate() {
	suite.Run("url not found", func() {
		url, err := suite.repo.Update(context.Background(), "abc123", "user1", "https://example.org", time.Now())

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("forbidden", func() {
		suite.save("abc123", "https://example.com", "user1")

		url, err := suite.repo.Update(context.Background(), "abc123", "user2", "https://example.org", time.Now())

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(url)

		stored, err := suite.repo.RetrieveByShortCode(context.Background(), "abc123")
		suite.Require().NoError(err)
		suite.Equal("https://example.com", stored.LongURL)
	})

	suite.Run("success", func() {
		suite.save("abc123", "https://example.com", "user1")
		at := time.Date(2024, time.March, 2, 9, 30, 0, 0, time.UTC)

		url, err := suite.repo.Update(context.Background(), "abc123", "user1", "https://example.org", at)

		suite.NoError(err)
		suite.Equal("https://example.org", url.LongURL)
		suite.Equal("user1", url.OwnerID)
		suite.Equal(at, url.UpdatedAt)

		stored, err := suite.repo.RetrieveByShortCode(context.Background(), "abc123")
		suite.Require().NoError(err)
		suite.Equal(at, stored.UpdatedAt)
	})
}

func (suite *URLRepositoryTestSuite) TestRemove() {
	suite.Run("url not found", func() {
		err := suite.repo.Remove(context.Background(), "abc123", "user1")

		suite.ErrorIs(err, entity.ErrURLNotFound)
	})

	suite.Run("forbidden", func() {
		suite.save("abc123", "https://example.com", "user1")

		err := suite.repo.Remove(context.Background(), "abc123", "user2")

		suite.ErrorIs(err, entity.ErrForbidden)

		_, err = suite.repo.RetrieveByShortCode(context.Background(), "abc123")
		suite.NoError(err)
	})

	suite.Run("success", func() {
		suite.save("abc123", "https://example.com", "user1")

		err := suite.repo.Remove(context.Background(), "abc123", "user1")

		suite.NoError(err)

		_, err = suite.repo.RetrieveByShortCode(context.Background(), "abc123")
		suite.ErrorIs(err, entity.ErrURLNotFound)
	})
}

func (suite *URLRepositoryTestSuite) TestRecordVisit() {
	suite.Run("url not found", func() {
		url, outcome, err := suite.repo.RecordVisit(context.Background(), "abc123", "10.0.0.1", "", time.Now())

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
		suite.Zero(outcome)
	})

	suite.Run("counts and uniqueness", func() {
		suite.save("abc123", "https://example.com", "user1")
		at := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

		url, outcome, err := suite.repo.RecordVisit(context.Background(), "abc123", "10.0.0.1", "visitorA", at)

		suite.NoError(err)
		suite.True(outcome.FirstSeen)
		suite.Equal(int64(1), outcome.Number)
		suite.Equal(at, outcome.VisitedAt)
		suite.Equal(int64(1), url.VisitCount)

		url, outcome, err = suite.repo.RecordVisit(context.Background(), "abc123", "10.0.0.1", "visitorB", at)

		suite.NoError(err)
		suite.False(outcome.FirstSeen)
		suite.Equal(int64(2), outcome.Number)
		suite.Equal(int64(2), url.VisitCount)
		suite.Len(url.Visits, 2)
		suite.Equal(map[string]string{"10.0.0.1": "visitorA"}, url.UniqueVisitors)
	})

	suite.Run("concurrent visits", func() {
		suite.save("abc123", "https://example.com", "user1")

		const visitors = 20
		const visitsPerVisitor = 10

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			firstSeen int
		)

		for i := 0; i < visitors; i++ {
			for j := 0; j < visitsPerVisitor; j++ {
				wg.Add(1)
				go func(fingerprint string) {
					defer wg.Done()

					_, outcome, err := suite.repo.RecordVisit(context.Background(), "abc123", fingerprint, "", time.Now())
					suite.NoError(err)

					if outcome.FirstSeen {
						mu.Lock()
						firstSeen++
						mu.Unlock()
					}
				}(fmt.Sprintf("10.0.0.%d", i))
			}
		}
		wg.Wait()

		url, err := suite.repo.RetrieveByShortCode(context.Background(), "abc123")
		suite.Require().NoError(err)

		suite.Equal(visitors, firstSeen)
		suite.Equal(int64(visitors*visitsPerVisitor), url.VisitCount)
		suite.Len(url.Visits, visitors*visitsPerVisitor)
		suite.Len(url.UniqueVisitors, visitors)
	})
}

func TestURLRepository(t *testing.T) {
	suite.Run(t, new(URLRepositoryTestSuite))
}
