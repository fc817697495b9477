package integration

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"blended-advisor/internal/app"
	infraredis "blended-advisor/internal/infra/redis"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestQuestionnaireAgainstRedis(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	client, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer client.Close()

	// Two services over one Redis stand in for two server instances.
	first := app.NewAdvisorService(infraredis.NewSessionStore(client, 5*time.Minute), nil)
	second := app.NewAdvisorService(infraredis.NewSessionStore(client, 5*time.Minute), nil)

	id, err := first.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	answers := []string{"b", "a", "b", "b", "b", "c", "a"}
	for i, letter := range answers {
		svc := first
		if i%2 == 1 {
			svc = second
		}
		if _, err := svc.Answer(ctx, id, i+1, letter); err != nil {
			t.Fatalf("answer q%d: %v", i+1, err)
		}
	}

	rec, err := second.Submit(ctx, id)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := []string{"Flex Model (41.7%)", "Enriched Virtual (41.7%)", "A La Carte (16.7%)"}
	if got := rec.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	n, err := client.Exists(ctx, "advisor:session:"+id).Result()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected session key removed after submit")
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(opts), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
