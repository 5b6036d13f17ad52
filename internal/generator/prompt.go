package generator

import "fmt"

// systemPrompt instructs the model to return categorized tweet drafts as
// a bare JSON array. The model is free to ignore the format, which is why
// parsing runs through fallback strategies.
const systemPrompt = `You are an expert at converting organizational meeting transcripts into engaging tweet suggestions.
Your task is to analyze the provided meeting transcript and generate tweet suggestions for the organization to post.
Focus on key governance updates, community initiatives, and collaborative projects discussed in the meeting.

Please extract 5-10 tweet-worthy segments from the transcript and convert them into engaging, informative tweets.
Each tweet should:
- Be 280 characters or less
- Be written in a professional but conversational tone
- Include relevant hashtags
- Highlight one specific update or announcement

Format your response as a JSON array where each item has the following structure:
{
  "category": "The category of the tweet (e.g., 'Governance', 'Community', 'Growth', 'Announcement')",
  "content": "The actual tweet text"
}

DO NOT include any explanations or commentary. Return ONLY valid JSON.`

func userPrompt(transcript string) string {
	return fmt.Sprintf("Here is the meeting transcript to analyze and convert into tweet suggestions:\n\n%s", transcript)
}
