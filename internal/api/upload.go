package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Image slot path segments and multipart field names, matching the backend's
// upload endpoints.
const (
	profileField = "profilePicture"
	bannerField  = "bannerPicture"
	profilePath  = "profile-picture"
	bannerPath   = "banner-picture"
)

// uploadResult tolerates the backend's historical response shapes: the URL
// may arrive under the slot field name, "url", or "imageUrl".
type uploadResult struct {
	ProfilePicture string `json:"profilePicture"`
	BannerPicture  string `json:"bannerPicture"`
	URL            string `json:"url"`
	ImageURL       string `json:"imageUrl"`
}

func (r *uploadResult) pick() string {
	for _, u := range []string{r.ProfilePicture, r.BannerPicture, r.URL, r.ImageURL} {
		if u != "" {
			return u
		}
	}
	return ""
}

// UploadProfilePicture sends an encoded image to the card's profile slot and
// returns the server-confirmed URL.
func (c *Client) UploadProfilePicture(ctx context.Context, uuid string, data []byte, filename string) (string, error) {
	return c.uploadImage(ctx, uuid, profilePath, profileField, data, filename)
}

// UploadBannerPicture sends an encoded image to the card's banner slot and
// returns the server-confirmed URL.
func (c *Client) UploadBannerPicture(ctx context.Context, uuid string, data []byte, filename string) (string, error) {
	return c.uploadImage(ctx, uuid, bannerPath, bannerField, data, filename)
}

// DeleteProfilePicture clears the card's profile slot on the server.
func (c *Client) DeleteProfilePicture(ctx context.Context, uuid string) error {
	return c.doJSON(ctx, http.MethodDelete, uploadPath(uuid, profilePath), nil, nil)
}

// DeleteBannerPicture clears the card's banner slot on the server.
func (c *Client) DeleteBannerPicture(ctx context.Context, uuid string) error {
	return c.doJSON(ctx, http.MethodDelete, uploadPath(uuid, bannerPath), nil, nil)
}

func uploadPath(uuid, slot string) string {
	return fmt.Sprintf("/api/upload/card/%s/%s", uuid, slot)
}

func (c *Client) uploadImage(ctx context.Context, uuid, slot, field string, data []byte, filename string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Message: "A network error occurred during upload."}
	}
	if _, err := part.Write(data); err != nil {
		return "", &Error{Kind: KindNetwork, Message: "A network error occurred during upload."}
	}
	if err := mw.Close(); err != nil {
		return "", &Error{Kind: KindNetwork, Message: "A network error occurred during upload."}
	}

	var result uploadResult
	if err := c.do(ctx, http.MethodPost, uploadPath(uuid, slot), &buf, mw.FormDataContentType(), &result); err != nil {
		return "", err
	}

	url := result.pick()
	if url == "" {
		return "", &Error{Kind: KindNetwork, Message: "Upload succeeded but no image URL was returned."}
	}
	return url, nil
}
