package service

import (
	"fmt"
	"strings"

	"void-apparel/models"
	"void-apparel/utils"
)

const noGraphicsDescription = "no graphics"

const previewPromptTemplate = "A professional fashion product photo of a %s %s in %s color, made of %s fabric. " +
	"The garment features %s design elements. " +
	"Ed Hardy tattoo-inspired darkwave punk aesthetic with detailed graphics. " +
	"Clean white studio background, professional lighting, high-end streetwear fashion photography. " +
	"8k, detailed textures."

// BuildPreviewPrompt turns a validated preview request into the image-generation prompt.
// The result depends only on req.
func BuildPreviewPrompt(req models.PreviewRequest) string {
	return fmt.Sprintf(previewPromptTemplate,
		strings.ToLower(req.Style),
		strings.ToLower(req.GarmentType),
		utils.MapHexToColorName(req.BaseColor),
		strings.ToLower(req.Fabric),
		describeGraphics(req.Graphics),
	)
}

func describeGraphics(graphics []models.PreviewGraphicSummary) string {
	if len(graphics) == 0 {
		return noGraphicsDescription
	}
	names := make([]string, len(graphics))
	for i, g := range graphics {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}
