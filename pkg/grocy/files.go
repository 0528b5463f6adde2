package grocy

import (
	"context"
	"encoding/base64"
)

// FileService uploads and downloads files attached to Grocy objects
// (recipe pictures, equipment manuals). File names are base64-encoded in
// the URL path, matching the server's convention.
type FileService struct {
	client *Client
}

func fileEndpoint(group, fileName string) string {
	return "files/" + group + "/" + base64.StdEncoding.EncodeToString([]byte(fileName))
}

// Upload stores a file in the given file group.
func (s *FileService) Upload(ctx context.Context, group, fileName string, data []byte) error {
	return s.client.putRaw(ctx, fileEndpoint(group, fileName), data)
}

// Download retrieves a file from the given file group.
func (s *FileService) Download(ctx context.Context, group, fileName string) ([]byte, error) {
	text, err := s.client.getText(ctx, fileEndpoint(group, fileName))
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Delete removes a file from the given file group.
func (s *FileService) Delete(ctx context.Context, group, fileName string) error {
	return s.client.delete(ctx, fileEndpoint(group, fileName))
}
