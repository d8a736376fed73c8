package affect

// Self-harm pattern sets. Patterns are matched against text that has been
// lowercased and diacritic-stripped, so they are written in plain ASCII.
// Hard patterns are strong indicators that force at least a likely tier;
// soft patterns are distress signals that need context and on their own
// never exceed possible.

var hardSafetyPatterns = map[Language][]string{
	English: {
		`\bkill myself\b`,
		`\bend my life\b`,
		`\bend it all\b`,
		`\bending it all\b`,
		`\bput an end to it\b`,
		`\bno reason to live\b`,
		`\bnothing to live for\b`,
		`\bwant to die\b`,
		`\bwanna die\b`,
		`\bwant to be dead\b`,
		`\bwish i was dead\b`,
		`\bwish i were dead\b`,
		`\bbetter off dead\b`,
		`\bworld would be better without me\b`,
		`\beveryone would be better off\b`,
		`\bno one would miss me\b`,
		`\bnobody would care if i\b`,
		`\bsuicide\b`,
		`\bsuicidal\b`,
		`\bkms\b`,
		`\bctb\b`,
		`\bgoing to end it\b`,
		`\bgonna end it\b`,
		`\bplanning to end\b`,
		`\bhave a plan\b.*\b(die|end|kill)\b`,
		`\boff myself\b`,
		`\boffing myself\b`,
		`\bunalive myself\b`,
		`\bunaliving myself\b`,
		`\bunalive\b`,
		`\bsewerslide\b`,
		`\bsewer slide\b`,
		`\bself delete\b`,
		`\bselfdelete\b`,
		`\bpermanent solution\b`,
		`\bpermanent sleep\b`,
		`\beternal sleep\b`,
		`\bself[-\s]?harm\b`,
		`\bself[-\s]?injury\b`,
		`\bhurt myself\b`,
		`\bhurting myself\b`,
		`\bcut myself\b`,
		`\bcutting myself\b`,
		`\bcuts on my\b`,
		`\bburning myself\b`,
		`\bburn myself\b`,
		`\bpunish myself\b`,
		`\bcan'?t go on\b`,
		`\bcannot go on\b`,
		`\bdone with life\b`,
		`\bdone living\b`,
		`\btired of living\b`,
		`\btired of being alive\b`,
		`\bgive up on life\b`,
		`\bgiving up on life\b`,
		`\bgave up on life\b`,
		`\bno point in living\b`,
		`\bwhat'?s the point\b.*\b(living|life|anymore)\b`,
		`\bno hope left\b`,
		`\bfinal goodbye\b`,
		`\bsaying goodbye\b.*\bforever\b`,
		`\bwon'?t be here much longer\b`,
	},
	Spanish: {
		`\bquiero morir\b`,
		`\bme quiero morir\b`,
		`\bdeseo morir\b`,
		`\bquiero morirme\b`,
		`\bno quiero vivir\b`,
		`\bno quiero seguir viviendo\b`,
		`\bya no quiero vivir\b`,
		`\bprefiero morir\b`,
		`\bestaria mejor muerto\b`,
		`\bestaria mejor muerta\b`,
		`\bmejor muerto\b`,
		`\bmejor muerta\b`,
		`\bestarian mejor sin mi\b`,
		`\bnadie me extranaria\b`,
		`\ba nadie le importo\b`,
		`\bsuicidio\b`,
		`\bsuicidarme\b`,
		`\bquitarme la vida\b`,
		`\bacabar con mi vida\b`,
		`\bacabar con todo\b`,
		`\bterminar con todo\b`,
		`\bponer fin a mi vida\b`,
		`\bponer fin a todo\b`,
		`\bmatarme\b`,
		`\bme voy a matar\b`,
		`\bvoy a matarme\b`,
		`\bautolesion\b`,
		`\bautolesionarme\b`,
		`\bhacerme dano\b`,
		`\bme hago dano\b`,
		`\bcortarme\b`,
		`\bme corto\b`,
		`\bquemarme\b`,
		`\bme quemo\b`,
		`\bno puedo mas\b`,
		`\bya no puedo mas\b`,
		`\bno aguanto mas\b`,
		`\bya no aguanto\b`,
		`\bno tengo razon para vivir\b`,
		`\bsin razon para vivir\b`,
		`\bsin ganas de vivir\b`,
		`\bperdi las ganas de vivir\b`,
		`\bno hay esperanza\b`,
		`\bsin esperanza\b`,
		`\btodo esta perdido\b`,
		`\bme rindo\b`,
		`\bme doy por vencido\b`,
		`\bme doy por vencida\b`,
	},
	Portuguese: {
		`\bquero morrer\b`,
		`\bdesejo morrer\b`,
		`\bnao quero viver\b`,
		`\bnao quero mais viver\b`,
		`\bprefiro morrer\b`,
		`\bestaria melhor morto\b`,
		`\bestaria melhor morta\b`,
		`\bmelhor morto\b`,
		`\bmelhor morta\b`,
		`\bestariam melhor sem mim\b`,
		`\bninguem sentiria minha falta\b`,
		`\bninguem se importa\b`,
		`\bninguem liga pra mim\b`,
		`\bsuicidio\b`,
		`\bme matar\b`,
		`\bvou me matar\b`,
		`\bquero me matar\b`,
		`\bqueria me matar\b`,
		`\btirar minha vida\b`,
		`\btirar a minha vida\b`,
		`\bacabar com tudo\b`,
		`\bacabar com a minha vida\b`,
		`\bdar fim a tudo\b`,
		`\bdar fim a minha vida\b`,
		`\bauto[-\s]?mutilacao\b`,
		`\bauto[-\s]?lesao\b`,
		`\bme machucar\b`,
		`\bme machuco\b`,
		`\bme cortar\b`,
		`\bme corto\b`,
		`\bme queimar\b`,
		`\bme queimo\b`,
		`\bnao aguento mais\b`,
		`\beu nao aguento\b`,
		`\bnao consigo mais\b`,
		`\bnao da mais\b`,
		`\bperdi a vontade de viver\b`,
		`\bsem vontade de viver\b`,
		`\bsem razao para viver\b`,
		`\bsem esperanca\b`,
		`\bnao ha esperanca\b`,
		`\bdesisti de tudo\b`,
		`\bvou desistir\b`,
		`\beu desisto\b`,
		`\bme rendo\b`,
		`\bto cansado de viver\b`,
		`\bto cansada de viver\b`,
		`\bcansado de existir\b`,
		`\bcansada de existir\b`,
	},
}

var softSafetyPatterns = map[Language][]string{
	English: {
		`\bkill me\b`,
		`\bi'?m dead\b`,
		`\bim dead\b`,
		`\bdead inside\b`,
		`\bwant to disappear\b`,
		`\bwanna disappear\b`,
		`\bjust disappear\b`,
		`\bfade away\b`,
		`\brun away from everything\b`,
		`\bescape everything\b`,
		`\bcan'?t take it anymore\b`,
		`\bcant take it\b`,
		`\bcan'?t deal\b`,
		`\bover it\b`,
		`\bso done\b`,
		`\bi'?m done\b`,
		`\bim done\b`,
		`\bneed to escape\b`,
		`\bneed an escape\b`,
		`\bwant it to stop\b`,
		`\bmake it stop\b`,
	},
	Spanish: {
		`\bme muero\b`,
		`\bquiero desaparecer\b`,
		`\bdesaparecer\b`,
		`\bescapar de todo\b`,
		`\bhuir de todo\b`,
		`\bno puedo seguir\b`,
		`\bya no puedo\b`,
		`\bestoy hart[oa]\b`,
		`\bno aguanto\b`,
		`\bnecesito escapar\b`,
	},
	Portuguese: {
		`\bto morrendo\b`,
		`\bquero sumir\b`,
		`\bquero desaparecer\b`,
		`\bfugir de tudo\b`,
		`\bnao consigo continuar\b`,
		`\bnao da pra continuar\b`,
		`\bto de saco cheio\b`,
		`\bpreciso fugir\b`,
		`\bpreciso escapar\b`,
	},
}
