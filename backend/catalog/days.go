// Package catalog holds the static content of the 21-day program: one
// mission per day plus the reflection prompts shown in the daily flow.
// The content is read-only; there is no lifecycle and no storage.
package catalog

// DayDefinition is the immutable content of one day of the program.
type DayDefinition struct {
	Day             int      `json:"day"`
	Mission         string   `json:"mission"`
	Environments    []string `json:"environments"`
	Assumption      string   `json:"assumption"`
	SafetyBehavior  string   `json:"safetyBehavior"`
	InternalFocus   string   `json:"internalFocus"`
	Script          string   `json:"script"`
	DefaultLearning string   `json:"defaultLearning"`
}

// CheckpointDays are the days that trigger the structured reflection survey
// after completion. Owned here so the cadence can change without touching
// the unlock logic.
var CheckpointDays = []int{8, 15, 21}

// IsCheckpointDay reports whether completing dayNumber triggers a checkpoint.
func IsCheckpointDay(dayNumber int) bool {
	for _, d := range CheckpointDays {
		if d == dayNumber {
			return true
		}
	}
	return false
}

// Day returns the definition for dayNumber, or false for numbers outside
// the program.
func Day(dayNumber int) (DayDefinition, bool) {
	if dayNumber < 1 || dayNumber > len(days) {
		return DayDefinition{}, false
	}
	return days[dayNumber-1], true
}

// All returns the full 21-day catalog in order.
func All() []DayDefinition {
	return days[:]
}

var days = [21]DayDefinition{
	{
		Day:             1,
		Mission:         "Faça contato visual e sorria para 3 pessoas desconhecidas.",
		Environments:    []string{"rua", "padaria", "transporte público"},
		Assumption:      "Se eu olhar nos olhos de alguém, a pessoa vai me achar estranho.",
		SafetyBehavior:  "Desviar o olhar para o celular quando alguém se aproxima.",
		InternalFocus:   "Perceba a tensão nos ombros antes de cada contato visual.",
		Script:          "Olhe, sorria de leve e siga em frente. Nada precisa ser dito.",
		DefaultLearning: "Um olhar e um sorriso quase nunca geram a reação negativa que eu esperava.",
	},
	{
		Day:             2,
		Mission:         "Cumprimente 3 pessoas com um 'bom dia' ou 'boa tarde' em voz clara.",
		Environments:    []string{"portaria", "elevador", "café"},
		Assumption:      "Se eu cumprimentar primeiro, vão me ignorar e eu vou passar vergonha.",
		SafetyBehavior:  "Falar baixo ou murmurar para poder fingir que não disse nada.",
		InternalFocus:   "Observe o impulso de baixar o volume da voz.",
		Script:          "\"Bom dia!\" — com volume suficiente para ser ouvido a dois metros.",
		DefaultLearning: "A maioria das pessoas responde a um cumprimento, e ser ignorado não dói tanto quanto eu imaginava.",
	},
	{
		Day:             3,
		Mission:         "Pergunte as horas ou uma informação simples a 2 pessoas.",
		Environments:    []string{"rua", "ponto de ônibus", "supermercado"},
		Assumption:      "Vou incomodar; as pessoas não têm paciência para perguntas óbvias.",
		SafetyBehavior:  "Pedir desculpas várias vezes antes mesmo de perguntar.",
		InternalFocus:   "Conte quantas vezes você ensaia a frase antes de falar.",
		Script:          "\"Oi, você sabe que horas são?\" / \"Você sabe onde fica a rua X?\"",
		DefaultLearning: "Pedir uma informação é uma interação normal, não um incômodo.",
	},
	{
		Day:             4,
		Mission:         "Faça um elogio sincero a uma pessoa desconhecida ou pouco próxima.",
		Environments:    []string{"trabalho", "loja", "academia"},
		Assumption:      "Elogiar um estranho vai soar falso ou invasivo.",
		SafetyBehavior:  "Transformar o elogio em piada para se proteger da reação.",
		InternalFocus:   "Note a vontade de se justificar logo depois de elogiar.",
		Script:          "\"Gostei muito da sua mochila, onde você comprou?\"",
		DefaultLearning: "Elogios sinceros costumam ser recebidos com surpresa positiva.",
	},
	{
		Day:             5,
		Mission:         "Faça uma pergunta de acompanhamento em uma conversa que você normalmente encerraria.",
		Environments:    []string{"trabalho", "família", "fila"},
		Assumption:      "Se eu prolongar a conversa, a pessoa vai querer fugir de mim.",
		SafetyBehavior:  "Encerrar a conversa primeiro para não ser rejeitado.",
		InternalFocus:   "Perceba o impulso de encerrar assim que surge um silêncio.",
		Script:          "\"E como foi isso para você?\" / \"O que aconteceu depois?\"",
		DefaultLearning: "Uma pergunta a mais geralmente aprofunda a conversa em vez de afastar a pessoa.",
	},
	{
		Day:             6,
		Mission:         "Conte uma opinião pessoal em um grupo, mesmo que ninguém pergunte.",
		Environments:    []string{"reunião", "grupo de amigos", "aula"},
		Assumption:      "Minha opinião é irrelevante e vão me achar arrogante por falar.",
		SafetyBehavior:  "Concordar com todo mundo para evitar atenção.",
		InternalFocus:   "Observe o coração acelerar nos segundos antes de falar.",
		Script:          "\"Eu penso um pouco diferente: ...\" — uma frase basta.",
		DefaultLearning: "Expressar uma opinião raramente gera o conflito que eu previa.",
	},
	{
		Day:             7,
		Mission:         "Inicie uma conversa curta com um vizinho ou colega que você só cumprimenta.",
		Environments:    []string{"condomínio", "trabalho", "academia"},
		Assumption:      "Vai ficar um clima estranho e os próximos encontros serão constrangedores.",
		SafetyBehavior:  "Esperar que o outro puxe assunto primeiro, sempre.",
		InternalFocus:   "Note as desculpas que sua mente cria para adiar.",
		Script:          "\"Há quanto tempo você mora aqui?\" / \"Como está sendo sua semana?\"",
		DefaultLearning: "Puxar assunto primeiro é visto como simpatia, não como invasão.",
	},
	{
		Day:             8,
		Mission:         "Peça uma pequena alteração em um pedido (sem gelo, outro molho, trocar o lugar).",
		Environments:    []string{"restaurante", "café", "loja"},
		Assumption:      "Pedir algo fora do padrão vai irritar quem me atende.",
		SafetyBehavior:  "Aceitar o que vier para não 'dar trabalho'.",
		InternalFocus:   "Perceba a culpa que aparece ao pedir algo para si.",
		Script:          "\"Pode ser sem gelo, por favor?\" / \"Tem como trocar a mesa?\"",
		DefaultLearning: "Pedir o que eu prefiro é legítimo e quase sempre atendido sem drama.",
	},
	{
		Day:             9,
		Mission:         "Discorde educadamente de alguém em uma conversa do dia.",
		Environments:    []string{"trabalho", "família", "amigos"},
		Assumption:      "Discordar vai transformar a conversa em briga.",
		SafetyBehavior:  "Dizer 'é, pode ser' mesmo discordando por dentro.",
		InternalFocus:   "Observe a tensão no estômago ao sustentar sua posição.",
		Script:          "\"Entendo seu ponto, mas eu vejo assim: ...\"",
		DefaultLearning: "Discordância educada mantém o respeito; a briga estava só na minha previsão.",
	},
	{
		Day:             10,
		Mission:         "Fale com alguém 'de autoridade': chefe, professor, médico — faça uma pergunta direta.",
		Environments:    []string{"trabalho", "consultório", "faculdade"},
		Assumption:      "Vou parecer incompetente se perguntar algo que 'deveria saber'.",
		SafetyBehavior:  "Pesquisar sozinho por horas para não precisar perguntar.",
		InternalFocus:   "Note como você ensaia a hierarquia na cabeça antes de falar.",
		Script:          "\"Tenho uma dúvida sobre X, pode me explicar?\"",
		DefaultLearning: "Perguntar a quem sabe é sinal de interesse, não de incompetência.",
	},
	{
		Day:             11,
		Mission:         "Conte uma história curta sobre você (1 minuto) em uma conversa.",
		Environments:    []string{"almoço", "intervalo", "encontro"},
		Assumption:      "Falar de mim vai entediar os outros.",
		SafetyBehavior:  "Devolver a atenção imediatamente com uma pergunta, sem terminar a história.",
		InternalFocus:   "Perceba a pressa de encerrar a própria fala.",
		Script:          "\"Isso me lembra uma coisa que aconteceu comigo: ...\"",
		DefaultLearning: "Histórias pessoais criam conexão; as pessoas escutam mais do que eu supunha.",
	},
	{
		Day:             12,
		Mission:         "Diga 'não' a um pedido pequeno que você normalmente aceitaria por obrigação.",
		Environments:    []string{"trabalho", "família", "amigos"},
		Assumption:      "Se eu disser não, a pessoa vai se afastar de mim.",
		SafetyBehavior:  "Inventar desculpas elaboradas em vez de um não simples.",
		InternalFocus:   "Observe a urgência de se justificar depois do não.",
		Script:          "\"Hoje não vou conseguir, mas obrigado por lembrar de mim.\"",
		DefaultLearning: "Um não simples e gentil não destrói relações.",
	},
	{
		Day:             13,
		Mission:         "Faça uma ligação telefônica que você vem adiando.",
		Environments:    []string{"casa", "trabalho"},
		Assumption:      "Vou travar no telefone e a pessoa vai perceber meu nervosismo.",
		SafetyBehavior:  "Resolver tudo por mensagem de texto para nunca ligar.",
		InternalFocus:   "Note quantas vezes você adia apertando outra tecla.",
		Script:          "\"Oi, é o/a [nome]. Estou ligando por causa de...\"",
		DefaultLearning: "A ligação dura minutos; a antecipação durava dias.",
	},
	{
		Day:             14,
		Mission:         "Entre em um lugar novo sozinho e fique pelo menos 15 minutos.",
		Environments:    []string{"café novo", "livraria", "evento aberto"},
		Assumption:      "Todo mundo vai reparar que estou sozinho e deslocado.",
		SafetyBehavior:  "Ficar grudado no celular para parecer ocupado.",
		InternalFocus:   "Perceba para onde vai sua atenção quando você guarda o celular.",
		Script:          "Peça algo, escolha um lugar, observe o ambiente sem pressa.",
		DefaultLearning: "Ninguém está me monitorando; cada um está ocupado com a própria vida.",
	},
	{
		Day:             15,
		Mission:         "Peça feedback direto a alguém: 'o que eu poderia fazer melhor?'",
		Environments:    []string{"trabalho", "projeto", "relação próxima"},
		Assumption:      "Vou ouvir uma crítica devastadora que confirma meus defeitos.",
		SafetyBehavior:  "Evitar qualquer situação em que eu possa ser avaliado.",
		InternalFocus:   "Observe a reação do corpo enquanto espera a resposta.",
		Script:          "\"Queria sua opinião sincera: o que eu poderia fazer melhor em X?\"",
		DefaultLearning: "Feedback real é mais útil e menos cruel do que o meu crítico interno.",
	},
	{
		Day:             16,
		Mission:         "Fale em um grupo maior: faça uma pergunta ou comentário em reunião/aula.",
		Environments:    []string{"reunião", "aula", "culto/encontro"},
		Assumption:      "Minha voz vai falhar e todos vão notar meu nervosismo.",
		SafetyBehavior:  "Ensaiar mentalmente a frase até a oportunidade passar.",
		InternalFocus:   "Note o momento exato em que você decide falar ou desistir.",
		Script:          "\"Posso acrescentar uma coisa?\" — e fale a primeira versão, não a perfeita.",
		DefaultLearning: "Falar em grupo fica mais fácil no momento em que eu paro de ensaiar.",
	},
	{
		Day:             17,
		Mission:         "Admita abertamente um erro ou uma limitação sua para alguém.",
		Environments:    []string{"trabalho", "família", "amigos"},
		Assumption:      "Admitir erro vai me desmoralizar para sempre.",
		SafetyBehavior:  "Esconder erros e torcer para ninguém descobrir.",
		InternalFocus:   "Perceba o alívio (ou não) depois de admitir.",
		Script:          "\"Eu errei nisso. Vou corrigir assim: ...\"",
		DefaultLearning: "Admitir um erro gera mais respeito do que escondê-lo.",
	},
	{
		Day:             18,
		Mission:         "Convide alguém para um café, almoço ou caminhada.",
		Environments:    []string{"trabalho", "faculdade", "vizinhança"},
		Assumption:      "A pessoa vai aceitar por pena ou recusar e me evitar depois.",
		SafetyBehavior:  "Esperar ser convidado, nunca convidar.",
		InternalFocus:   "Observe os cenários catastróficos que a mente monta antes do convite.",
		Script:          "\"Topa um café essa semana? Quinta ou sexta funciona para mim.\"",
		DefaultLearning: "Convidar é correr um risco pequeno por uma conexão real; recusas são sobre agenda, não sobre mim.",
	},
	{
		Day:             19,
		Mission:         "Sustente uma conversa de 10 minutos com alguém pouco conhecido.",
		Environments:    []string{"evento", "trabalho", "festa"},
		Assumption:      "Vou ficar sem assunto e o silêncio vai ser insuportável.",
		SafetyBehavior:  "Preparar uma lista mental de tópicos e segui-la rigidamente.",
		InternalFocus:   "Note o que acontece quando você tolera um silêncio de 3 segundos.",
		Script:          "Use o que a pessoa acabou de dizer: \"Você falou de X, como é isso?\"",
		DefaultLearning: "Silêncios curtos são normais; a conversa se sustenta quando eu escuto de verdade.",
	},
	{
		Day:             20,
		Mission:         "Exponha uma vontade sua e negocie: escolha o filme, o restaurante, o horário.",
		Environments:    []string{"família", "amigos", "relacionamento"},
		Assumption:      "Impor minha preferência vai me tornar egoísta aos olhos dos outros.",
		SafetyBehavior:  "Dizer 'tanto faz' e aceitar qualquer escolha.",
		InternalFocus:   "Perceba o desconforto de ocupar espaço na decisão.",
		Script:          "\"Eu prefiro X. Podemos fazer assim hoje e do seu jeito na próxima?\"",
		DefaultLearning: "Ter preferências e negociá-las é parte normal de qualquer relação.",
	},
	{
		Day:             21,
		Mission:         "Escolha a missão que foi mais difícil para você e repita-a hoje, do seu jeito.",
		Environments:    []string{"onde a missão original aconteceu"},
		Assumption:      "A suposição daquele dia — teste-a de novo.",
		SafetyBehavior:  "O comportamento de segurança daquele dia — deixe-o de fora de novo.",
		InternalFocus:   "Compare a ansiedade de hoje com a da primeira vez.",
		Script:          "O mesmo roteiro do dia escolhido, agora com 20 dias de prática.",
		DefaultLearning: "O que era impossível no início virou desconfortável; o que era desconfortável virou normal.",
	},
}
