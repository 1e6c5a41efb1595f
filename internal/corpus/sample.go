package corpus

// Sample returns the built-in demo dataset of product reviews, unlabeled.
func Sample() []Document {
	docs := make([]Document, len(sampleTexts))
	for i, t := range sampleTexts {
		docs[i] = Document{Text: t, Topic: TopicOutlier}
	}
	return docs
}

var sampleTexts = []string{
	"I absolutely love this product! Best purchase ever.",
	"Terrible experience, would not recommend to anyone.",
	"The customer service was outstanding and very helpful.",
	"Completely disappointed with the quality.",
	"Amazing features and great value for money!",
	"The shipping was delayed and communication was poor.",
	"Exceeded all my expectations, truly impressive.",
	"Waste of money, nothing works as advertised.",
	"Fantastic design and very easy to use.",
	"Horrible quality control, arrived damaged.",
	"This changed my life! Absolutely incredible.",
	"Misleading marketing and poor product quality.",
	"Best investment I've made this year.",
	"Customer support never responded to my emails.",
	"The interface is intuitive and beautifully designed.",
	"Breaking after just two weeks of use.",
	"Innovative solution to a common problem.",
	"Overpriced and underdelivered on promises.",
	"Seamless integration with existing tools.",
	"Buggy software with frequent crashes.",
	"The new update brought amazing improvements.",
	"Data privacy concerns make me uncomfortable.",
	"Revolutionary approach to the industry.",
	"Feels like a downgrade from previous version.",
	"Exceptional build quality and attention to detail.",
}
