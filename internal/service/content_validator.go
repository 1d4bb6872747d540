package service

import (
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"brainvault/internal/errors"
	"brainvault/internal/model"
)

// MaxFileSize is the largest accepted upload.
const MaxFileSize int64 = 10 << 20

const maxTitleLength = 255

// allowedFileTypes maps each accepted MIME type to the container format the
// sniffer may report for it. Office formats are detected as zip or OLE.
var allowedFileTypes = map[string]string{
	"application/pdf":    "",
	"application/msword": "application/x-ole-storage",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "application/zip",
	"application/vnd.ms-powerpoint":                                             "application/x-ole-storage",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "application/zip",
}

// FileUpload describes an uploaded document before it is stored.
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.ReadSeeker
}

// Submission is a raw content create request.
type Submission struct {
	Title       string
	Type        string
	Link        string
	Description string
	File        *FileUpload
}

// draft carries exactly the fields one content type accepts.
type draft interface {
	check() error
	fill(c *model.Content)
}

type socialDraft struct {
	link        string
	description string
}

func (d socialDraft) check() error {
	var missing []string
	if d.link == "" {
		missing = append(missing, "link")
	}
	if d.description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return errors.NewValidationError(errors.ErrMissingRequiredField, "link and description are required", missing...)
	}
	return nil
}

func (d socialDraft) fill(c *model.Content) {
	c.Link = d.link
	c.Description = d.description
}

type documentDraft struct {
	link        string
	description string
	file        *FileUpload
}

func (d documentDraft) check() error {
	if d.file == nil && d.link == "" {
		return errors.NewValidationError(errors.ErrMissingRequiredField, "file OR link is required", "file", "link")
	}
	return nil
}

func (d documentDraft) fill(c *model.Content) {
	c.Link = d.link
	c.Description = d.description
	if d.file != nil {
		c.FileName = d.file.Name
		c.FileSize = d.file.Size
		c.FileMimeType = d.file.ContentType
	}
}

type otherDraft struct {
	link        string
	description string
}

func (d otherDraft) check() error {
	if d.link == "" && d.description == "" {
		return errors.NewValidationError(errors.ErrMissingRequiredField, "link OR description is required", "link", "description")
	}
	return nil
}

func (d otherDraft) fill(c *model.Content) {
	c.Link = d.link
	c.Description = d.description
}

// ContentValidator enforces per-type field requirements on submissions.
type ContentValidator struct {
	maxFileSize int64
}

// NewContentValidator creates a validator with the default upload limit.
func NewContentValidator() *ContentValidator {
	return &ContentValidator{maxFileSize: MaxFileSize}
}

// Validate checks sub and returns the normalized record owned by ownerID.
// The returned record has no FilePath; storing the file is the caller's job.
func (v *ContentValidator) Validate(ownerID uuid.UUID, sub Submission) (*model.Content, error) {
	title := strings.TrimSpace(sub.Title)
	if title == "" {
		return nil, errors.NewValidationError(errors.ErrMissingRequiredField, "title is required", "title")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, errors.NewValidationError(errors.ErrTitleTooLong, fmt.Sprintf("title must be at most %d characters", maxTitleLength), "title")
	}

	contentType, ok := model.ParseContentType(strings.TrimSpace(sub.Type))
	if !ok {
		return nil, errors.NewValidationError(errors.ErrInvalidType, "type must be one of "+typeList(), "type")
	}

	link := strings.TrimSpace(sub.Link)
	if link != "" {
		if err := validateLink(link); err != nil {
			return nil, err
		}
	}
	description := strings.TrimSpace(sub.Description)

	if sub.File != nil && contentType != model.ContentTypeDocuments {
		return nil, errors.NewValidationError(errors.ErrInvalidFileType, "files can only be attached to documents", "file")
	}

	d, err := v.draftFor(contentType, link, description, sub.File)
	if err != nil {
		return nil, err
	}
	if err := d.check(); err != nil {
		return nil, err
	}

	content := &model.Content{
		UserID: ownerID,
		Title:  title,
		Type:   contentType,
		Tags:   []string{},
	}
	d.fill(content)
	return content, nil
}

func (v *ContentValidator) draftFor(t model.ContentType, link, description string, file *FileUpload) (draft, error) {
	switch {
	case t.IsSocial():
		return socialDraft{link: link, description: description}, nil
	case t == model.ContentTypeDocuments:
		if file != nil {
			checked, err := v.checkFile(file)
			if err != nil {
				return nil, err
			}
			file = checked
		}
		return documentDraft{link: link, description: description, file: file}, nil
	default:
		return otherDraft{link: link, description: description}, nil
	}
}

// checkFile enforces the size limit and the document type allowlist. The
// declared type must be allowed and agree with the sniffed content.
func (v *ContentValidator) checkFile(f *FileUpload) (*FileUpload, error) {
	if f.Size > v.maxFileSize {
		return nil, errors.NewValidationError(errors.ErrFileTooLarge,
			fmt.Sprintf("file exceeds the %d MiB limit", v.maxFileSize>>20), "file")
	}
	if f.Content == nil {
		return nil, errors.NewValidationError(errors.ErrMissingRequiredField, "file content is empty", "file")
	}

	detected, err := mimetype.DetectReader(f.Content)
	if err != nil {
		return nil, fmt.Errorf("detect file type: %w", err)
	}
	if _, err := f.Content.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	declared := baseMediaType(f.ContentType)
	if declared == "" || declared == "application/octet-stream" {
		declared = baseMediaType(detected.String())
	}
	container, ok := allowedFileTypes[declared]
	if !ok || !sniffMatches(detected, declared, container) {
		return nil, errors.NewValidationError(errors.ErrInvalidFileType,
			"only PDF, DOC, DOCX, PPT and PPTX files are allowed", "file")
	}

	out := *f
	out.ContentType = declared
	return &out, nil
}

func sniffMatches(detected *mimetype.MIME, declared, container string) bool {
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(declared) || (container != "" && m.Is(container)) {
			return true
		}
	}
	return false
}

func baseMediaType(v string) string {
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return mt
}

func validateLink(link string) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewValidationError(errors.ErrInvalidLink, "link must be an absolute http(s) URL", "link")
	}
	return nil
}

func typeList() string {
	types := model.ContentTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
