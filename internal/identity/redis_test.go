package identity

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisDirectoryTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	resolver *redisDirectory
}

func (s *RedisDirectoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	resolver, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.resolver = resolver
}

func (s *RedisDirectoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisDirectoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisDirectoryTestSuite))
}

func (s *RedisDirectoryTestSuite) TestResolveUserIDs_MixedResolution() {
	err := s.resolver.RegisterAccount(context.Background(), "alice@example.com", "user-alice")
	s.Require().NoError(err)

	output, err := s.resolver.ResolveUserIDs(context.Background(), &ResolveUserIDsInput{
		Emails: []string{"alice@example.com", "ghost@example.com"},
	})
	s.Require().NoError(err)

	// Known emails resolve, unknown ones come back empty rather than failing
	s.Equal("user-alice", output.UserIDs["alice@example.com"])
	s.Equal("", output.UserIDs["ghost@example.com"])
	s.Len(output.UserIDs, 2)
}

func (s *RedisDirectoryTestSuite) TestResolveUserIDs_EmptyBatch() {
	output, err := s.resolver.ResolveUserIDs(context.Background(), &ResolveUserIDsInput{})
	s.Require().NoError(err)
	s.Empty(output.UserIDs)
}

func (s *RedisDirectoryTestSuite) TestRegisterAccount_Validation() {
	err := s.resolver.RegisterAccount(context.Background(), "", "user-1")
	s.Require().Error(err)

	err = s.resolver.RegisterAccount(context.Background(), "a@example.com", "")
	s.Require().Error(err)
}
