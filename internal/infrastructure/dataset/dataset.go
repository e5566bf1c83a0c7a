// Package dataset 图书数据集的解码、校验与转换
//
// 数据集格式（JSON或YAML，字段名相同）：
//
//	page_size: 36            # 可选，缺省时使用catalog.DefaultPageSize
//	authors:                 # 有序，决定作者下拉选项的顺序
//	  - {id: herbert, name: Frank Herbert}
//	genres:
//	  - {id: scifi, name: Science Fiction}
//	books:
//	  - id: 6f1c...
//	    title: Dune
//	    image: https://...
//	    author: herbert
//	    genres: [scifi]
//	    published: "1965-08-01T00:00:00Z"
//	    description: ...
//
// 设计说明：
// 1. JSON用json-iterator解码，YAML用goccy/go-yaml解码，两者共用同一组结构体
// 2. 先做字段级校验（validator），再交给catalog.NewCatalog做引用完整性校验
// 3. Document同时作为Redis快照的序列化格式（FromCatalog → Marshal）
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Format 数据集文件格式
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// PublishedLayout 出版时间的文本格式
const PublishedLayout = time.RFC3339

var (
	// ErrInvalidDataset 数据集字段校验失败
	ErrInvalidDataset = apperrors.New(apperrors.ErrCodeInvalidData, "数据集校验失败")

	// ErrDecodeDataset 数据集无法解析
	ErrDecodeDataset = apperrors.New(apperrors.ErrCodeDatasetError, "数据集解析失败")

	// ErrUnsupportedFormat 不支持的文件格式
	ErrUnsupportedFormat = apperrors.New(apperrors.ErrCodeDatasetError, "不支持的数据集格式")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document 数据集文档
type Document struct {
	PageSize *int          `json:"page_size,omitempty" yaml:"page_size,omitempty" validate:"omitempty,gt=0"`
	Authors  []EntryRecord `json:"authors" yaml:"authors" validate:"unique=ID,dive"`
	Genres   []EntryRecord `json:"genres" yaml:"genres" validate:"unique=ID,dive"`
	Books    []BookRecord  `json:"books" yaml:"books" validate:"dive"`
}

// EntryRecord 作者/分类记录
type EntryRecord struct {
	ID   string `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// BookRecord 图书记录
// 图书ID的唯一性由catalog.NewCatalog校验，这里只校验字段本身
type BookRecord struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Image       string   `json:"image" yaml:"image" validate:"omitempty,url"`
	Author      string   `json:"author" yaml:"author" validate:"required"`
	Genres      []string `json:"genres" yaml:"genres" validate:"dive,required"`
	Published   string   `json:"published" yaml:"published" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Description string   `json:"description" yaml:"description"`
}

// FormatFromPath 根据扩展名判断格式
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", ErrUnsupportedFormat.WithDetail(path)
	}
}

// Decode 解码数据集
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, ErrUnsupportedFormat.WithDetail(string(format))
	}
	if err != nil {
		return nil, &apperrors.AppError{Code: ErrDecodeDataset.Code, Message: ErrDecodeDataset.Message, Err: err}
	}
	return &doc, nil
}

// Marshal 编码数据集
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.Marshal(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, ErrUnsupportedFormat.WithDetail(string(format))
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate 字段级校验
// 返回的错误信息包含第一个失败字段的路径，如 Document.Books[3].Title
func Validate(doc *Document) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return ErrInvalidDataset.WithDetail(fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
	}
	return &apperrors.AppError{Code: ErrInvalidDataset.Code, Message: ErrInvalidDataset.Message, Err: err}
}

// ToCatalog 构建领域目录
// pageSize>0时覆盖数据集中的page_size
func (d *Document) ToCatalog(pageSize int) (*catalog.Catalog, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	books := make([]catalog.Book, 0, len(d.Books))
	for _, r := range d.Books {
		published, err := time.Parse(PublishedLayout, r.Published)
		if err != nil {
			return nil, ErrInvalidDataset.WithDetail(fmt.Sprintf("图书%s的出版时间格式错误", r.ID))
		}
		books = append(books, catalog.Book{
			ID:          r.ID,
			Title:       r.Title,
			Image:       r.Image,
			Author:      r.Author,
			Genres:      r.Genres,
			Published:   published,
			Description: r.Description,
		})
	}

	if pageSize <= 0 && d.PageSize != nil {
		pageSize = *d.PageSize
	}

	return catalog.NewCatalog(books, toEntries(d.Authors), toEntries(d.Genres), pageSize)
}

// FromCatalog 把目录转换回数据集文档（用于缓存快照）
func FromCatalog(c *catalog.Catalog) *Document {
	pageSize := c.PageSize()
	doc := &Document{
		PageSize: &pageSize,
		Authors:  fromEntries(c.Authors()),
		Genres:   fromEntries(c.Genres()),
	}
	for _, b := range c.Books() {
		doc.Books = append(doc.Books, BookRecord{
			ID:          b.ID,
			Title:       b.Title,
			Image:       b.Image,
			Author:      b.Author,
			Genres:      b.Genres,
			Published:   b.Published.UTC().Format(PublishedLayout),
			Description: b.Description,
		})
	}
	return doc
}

func toEntries(records []EntryRecord) []catalog.Entry {
	entries := make([]catalog.Entry, len(records))
	for i, r := range records {
		entries[i] = catalog.Entry{ID: r.ID, Name: r.Name}
	}
	return entries
}

func fromEntries(entries []catalog.Entry) []EntryRecord {
	records := make([]EntryRecord, len(entries))
	for i, e := range entries {
		records[i] = EntryRecord{ID: e.ID, Name: e.Name}
	}
	return records
}
