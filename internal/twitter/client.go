// Package twitter is the posting sink: it submits a segment thread to the
// X API v2 as a reply chain, each tweet referencing the previous one.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dghubble/oauth1"
)

const defaultEndpoint = "https://api.twitter.com/2/tweets"

// Poster defines the interface for submitting a thread
type Poster interface {
	PostThread(ctx context.Context, segments []string) ([]string, error)
}

// Credentials holds the OAuth 1.0a user-context keys
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// Client posts threads through the X API v2 using OAuth 1.0a signing
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a posting client from user-context credentials
func NewClient(creds Credentials) *Client {
	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	return &Client{
		httpClient: config.Client(oauth1.NoContext, token),
		endpoint:   defaultEndpoint,
	}
}

type tweetRequest struct {
	Text  string      `json:"text"`
	Reply *tweetReply `json:"reply,omitempty"`
}

type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// PostThread posts each segment as a reply to the previous one and returns
// the tweet IDs in order. A failed segment aborts the chain immediately;
// the caller decides whether the whole run is retried later.
func (c *Client) PostThread(ctx context.Context, segments []string) ([]string, error) {
	ids := make([]string, 0, len(segments))
	replyTo := ""

	for i, segment := range segments {
		id, err := c.postTweet(ctx, segment, replyTo)
		if err != nil {
			return ids, fmt.Errorf("failed to post segment %d/%d: %w", i+1, len(segments), err)
		}
		ids = append(ids, id)
		replyTo = id
	}

	return ids, nil
}

func (c *Client) postTweet(ctx context.Context, text, replyTo string) (string, error) {
	reqBody := tweetRequest{Text: text}
	if replyTo != "" {
		reqBody.Reply = &tweetReply{InReplyToTweetID: replyTo}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var parsed tweetResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Data.ID == "" {
		return "", fmt.Errorf("response missing tweet id")
	}

	return parsed.Data.ID, nil
}

// MockPoster records posted threads for testing
type MockPoster struct {
	Threads [][]string
	Error   error
}

// PostThread records the thread and returns synthetic IDs
func (m *MockPoster) PostThread(ctx context.Context, segments []string) ([]string, error) {
	if m.Error != nil {
		return nil, m.Error
	}

	m.Threads = append(m.Threads, segments)

	ids := make([]string, len(segments))
	for i := range segments {
		ids[i] = fmt.Sprintf("mock-%d-%d", len(m.Threads), i+1)
	}
	return ids, nil
}
