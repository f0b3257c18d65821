package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/vivento/internal/config"
	"github.com/GlebRadaev/vivento/pkg/cache"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestWait_ClosesResourcesAfterWorkers() {
	mr := miniredis.RunT(s.T())
	s.app.redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	ctx, cancel := context.WithCancel(context.Background())
	workerErr := make(chan error, 1)
	s.app.wg.Add(1)
	go func() {
		defer s.app.wg.Done()
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		workerErr <- s.app.redis.Ping(context.Background()).Err()
	}()
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.Require().NoError(err)
	s.NoError(<-workerErr)
	s.Error(s.app.redis.Ping(context.Background()).Err())
}

func (s *ApplicationSuite) TestBuildCache_Disabled() {
	c, err := s.app.buildCache(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.IsType(cache.Noop{}, c)
	s.Nil(s.app.redis)
}

func (s *ApplicationSuite) TestBuildCache_Redis() {
	mr := miniredis.RunT(s.T())

	c, err := s.app.buildCache(context.Background(), &config.Config{RedisAddr: mr.Addr()})

	s.Require().NoError(err)
	s.IsType(&cache.Redis{}, c)
	s.NotNil(s.app.redis)
	s.app.closeResources()
}

func (s *ApplicationSuite) TestBuildCache_Unreachable() {
	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()

	_, err := s.app.buildCache(context.Background(), &config.Config{RedisAddr: addr})

	s.Error(err)
	s.Nil(s.app.redis)
}

func (s *ApplicationSuite) TestCloseResources_Empty() {
	s.NotPanics(s.app.closeResources)
}
