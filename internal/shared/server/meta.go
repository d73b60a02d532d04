package server

import (
	"github.com/gin-gonic/gin"

	"skillfit/internal/knowledge"
	"skillfit/internal/shared/server/respond"
)

// registerMetaRoutes attaches the /meta endpoint, which tells clients
// what the knowledge base understands so UIs can populate pickers
// without hardcoding the taxonomy.
func registerMetaRoutes(rg *gin.RouterGroup, kb *knowledge.Base) {
	rg.GET("/meta", func(c *gin.Context) {
		categories := kb.SkillCategories()
		categoryNames := make([]string, 0, len(categories))
		for _, category := range categories {
			categoryNames = append(categoryNames, category.Name)
		}
		respond.OK(c, gin.H{
			"experienceLevels": kb.LevelNames(),
			"targetRoles":      kb.TargetRoleNames(),
			"careers":          kb.AllCareers(),
			"skillCategories":  categoryNames,
		})
	})
}
