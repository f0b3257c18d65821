package facebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/vivento/pkg/clients"
)

var ErrInvalidToken = errors.New("facebook: invalid access token")

type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func (p *Profile) PictureURL() string {
	return p.Picture.Data.URL
}

type Client struct {
	baseURL string
	http    clients.HTTPClientI
}

func NewClient(baseURL string, httpClient clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Profile resolves the owner of an access token through the Graph API.
func (c *Client) Profile(ctx context.Context, accessToken string) (*Profile, error) {
	q := url.Values{}
	q.Set("fields", "id,name,email,picture")
	q.Set("access_token", accessToken)

	res, err := c.http.Get(ctx, c.baseURL+"/me?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("facebook: request profile: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var profile Profile
	if err := json.Unmarshal(res.Body, &profile); err != nil {
		return nil, fmt.Errorf("facebook: decode profile: %w", err)
	}
	if profile.ID == "" {
		return nil, ErrInvalidToken
	}
	return &profile, nil
}
