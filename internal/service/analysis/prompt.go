package analysis

// Prompt — фиксированная инструкция для мультимодальной модели.
const Prompt = `
Analyze the person's skin tone and provide recommendations in JSON format. Return ONLY valid JSON data without any markdown formatting or additional text.

DO NOT:
- Include any explanatory text
- Add markdown formatting
- Suggest more than 5 colors
- Include colors that clash with the skin tone
- Return invalid JSON format

  {
    "skinTone": {
      "type": "Fitzpatrick Type",
      "hexCode": "#HEX"
    },
    "recommendedColors": [
      {
        "name": "color name",
        "hexCode": "#HEX"
      }
    ]
  }
  Provide exactly 5 recommended colors. Return only valid JSON without any additional text.
  `
