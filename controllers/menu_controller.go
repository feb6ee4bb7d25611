package controllers

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/entity"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
)

type MenuController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewMenuController(db *gorm.DB, uploadDir string) *MenuController {
	return &MenuController{DB: db, UploadDir: uploadDir}
}

type menuCategory struct {
	Category string            `json:"category"`
	Items    []entity.MenuItem `json:"items"`
}

// GET /menu — available dishes grouped by category, in catalog order.
func (m *MenuController) List(c *gin.Context) {
	var items []entity.MenuItem
	if err := m.DB.Where("available = ?", true).Order("category, id").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var groups []menuCategory
	idx := map[string]int{}
	for _, it := range items {
		i, ok := idx[it.Category]
		if !ok {
			i = len(groups)
			idx[it.Category] = i
			groups = append(groups, menuCategory{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	resp.OK(c, gin.H{"categories": groups})
}

// GET /admin/menu — full table, including unavailable dishes.
func (m *MenuController) AdminList(c *gin.Context) {
	var items []entity.MenuItem
	if err := m.DB.Order("category, id").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// saveImage stores the optional multipart upload under a uuid filename and
// returns its public path. No file means no change.
func (m *MenuController) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(m.UploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// POST /admin/menu (multipart form)
func (m *MenuController) Create(c *gin.Context) {
	name := c.PostForm("name")
	priceRaw := c.PostForm("price")
	category := c.PostForm("category")
	if name == "" || priceRaw == "" || category == "" {
		resp.BadRequest(c, "name, price and category are required")
		return
	}
	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		resp.BadRequest(c, "price must be a number")
		return
	}

	image, err := m.saveImage(c)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	item := entity.MenuItem{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		Category:    category,
		Image:       image,
		Available:   c.DefaultPostForm("available", "true") != "false",
	}
	if err := m.DB.Create(&item).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"success": true, "item": item})
}

// PATCH /admin/menu/:id (multipart form; only supplied fields change)
func (m *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var item entity.MenuItem
	if err := m.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if v := c.PostForm("name"); v != "" {
		item.Name = v
	}
	if v := c.PostForm("description"); v != "" {
		item.Description = v
	}
	if v := c.PostForm("category"); v != "" {
		item.Category = v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "price must be a number")
			return
		}
		item.Price = price
	}
	if v := c.PostForm("available"); v != "" {
		item.Available = v != "false"
	}
	if image, err := m.saveImage(c); err != nil {
		resp.ServerError(c, err)
		return
	} else if image != "" {
		item.Image = image
	}

	if err := m.DB.Save(&item).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true, "item": item})
}

// DELETE /admin/menu/:id
func (m *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := m.DB.Delete(&entity.MenuItem{}, id).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}
